package syntax

import (
	"errors"
	"testing"
)

func scanAll(t *testing.T, pattern string) []Token {
	t.Helper()
	s := NewScanner(pattern)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("Next() failed: %v", err)
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func TestScanner_Basic(t *testing.T) {
	tokens := scanAll(t, `a|(bc)*`)

	want := []struct {
		kind TokenKind
		char rune
	}{
		{TokenChar, 'a'},
		{TokenUnion, 0},
		{TokenLeftParen, 0},
		{TokenChar, 'b'},
		{TokenChar, 'c'},
		{TokenRightParen, 0},
		{TokenStar, 0},
		{TokenEOF, 0},
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind {
			t.Errorf("token %d: kind = %d, want %d", i, tokens[i].Kind, w.kind)
		}
		if w.kind == TokenChar && tokens[i].Char != w.char {
			t.Errorf("token %d: char = %q, want %q", i, tokens[i].Char, w.char)
		}
	}
}

func TestScanner_Escapes(t *testing.T) {
	tokens := scanAll(t, `a|\|\\(\)`)

	wantChars := []rune{'a', '|', '\\', ')'}
	var gotChars []rune
	for _, tok := range tokens {
		if tok.Kind == TokenChar {
			gotChars = append(gotChars, tok.Char)
		}
	}
	if len(gotChars) != len(wantChars) {
		t.Fatalf("got %d character tokens, want %d", len(gotChars), len(wantChars))
	}
	for i, w := range wantChars {
		if gotChars[i] != w {
			t.Errorf("character %d: got %q, want %q", i, gotChars[i], w)
		}
	}
}

func TestScanner_InvalidEscape(t *testing.T) {
	s := NewScanner(`a\bc`)

	if _, err := s.Next(); err != nil {
		t.Fatalf("first token failed: %v", err)
	}
	_, err := s.Next()
	if err == nil {
		t.Fatal("expected invalid escape error")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if perr.Kind != ErrInvalidEscape {
		t.Errorf("kind = %d, want ErrInvalidEscape", perr.Kind)
	}
	if perr.Pos != 2 {
		t.Errorf("pos = %d, want 2", perr.Pos)
	}
	if perr.Char != 'b' {
		t.Errorf("char = %q, want 'b'", perr.Char)
	}
}

func TestScanner_Empty(t *testing.T) {
	s := NewScanner("")
	tok, err := s.Next()
	if err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if tok.Kind != TokenEOF {
		t.Errorf("kind = %d, want TokenEOF", tok.Kind)
	}
}

func TestScanner_DanglingBackslash(t *testing.T) {
	tokens := scanAll(t, `a\`)
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2 (char + EOF)", len(tokens))
	}
	if tokens[0].Kind != TokenChar || tokens[0].Char != 'a' {
		t.Errorf("first token = %+v, want Char 'a'", tokens[0])
	}
	if tokens[1].Kind != TokenEOF {
		t.Errorf("second token = %+v, want EOF", tokens[1])
	}
}
