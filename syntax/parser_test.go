package syntax

import (
	"errors"
	"reflect"
	"testing"
)

// concat builds a right-leaning Concat chain, matching the parser's fold.
func concat(nodes ...*Node) *Node {
	ast := nodes[len(nodes)-1]
	for i := len(nodes) - 2; i >= 0; i-- {
		ast = Concat(nodes[i], ast)
	}
	return ast
}

func chars(s string) []*Node {
	var nodes []*Node
	for _, r := range s {
		nodes = append(nodes, Char(r))
	}
	return nodes
}

func TestParse_AST(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    *Node
	}{
		{
			name:    "single char",
			pattern: "a",
			want:    Char('a'),
		},
		{
			name:    "concatenation",
			pattern: "abc",
			want:    concat(chars("abc")...),
		},
		{
			name:    "alternation folds right",
			pattern: "abc|def|ghi",
			want: Union(
				concat(chars("abc")...),
				Union(concat(chars("def")...), concat(chars("ghi")...)),
			),
		},
		{
			name:    "group with alternation",
			pattern: "abc(def|ghi)",
			want: concat(
				Char('a'), Char('b'), Char('c'),
				Union(concat(chars("def")...), concat(chars("ghi")...)),
			),
		},
		{
			name:    "escaped star is a literal",
			pattern: `a\*b`,
			want:    concat(Char('a'), Char('*'), Char('b')),
		},
		{
			name:    "star binds to previous node",
			pattern: "ab*",
			want:    Concat(Char('a'), Star(Char('b'))),
		},
		{
			name:    "star binds to group",
			pattern: "(ab)*",
			want:    Star(Concat(Char('a'), Char('b'))),
		},
		{
			name:    "trailing empty branch is dropped",
			pattern: "a|",
			want:    Char('a'),
		},
		{
			name:    "interior empty branch matches zero-length input",
			pattern: "a||b",
			want:    Union(Char('a'), Union(Empty(), Char('b'))),
		},
		{
			name:    "nested groups",
			pattern: "((a))",
			want:    Char('a'),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.pattern, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    ParseError
	}{
		{
			name:    "missing right paren",
			pattern: "abc(def|ghi",
			want:    ParseError{Kind: ErrNoRightParen},
		},
		{
			name:    "unmatched right paren",
			pattern: "abc(def|ghi))",
			want:    ParseError{Kind: ErrInvalidRightParen, Pos: 12},
		},
		{
			name:    "star without operand",
			pattern: "*abc",
			want:    ParseError{Kind: ErrNoPrev, Pos: 0},
		},
		{
			name:    "empty pattern",
			pattern: "",
			want:    ParseError{Kind: ErrEmpty},
		},
		{
			name:    "invalid escape",
			pattern: `a\bc`,
			want:    ParseError{Kind: ErrInvalidEscape, Pos: 2, Char: 'b'},
		},
		{
			name:    "empty group only",
			pattern: "()",
			want:    ParseError{Kind: ErrEmpty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.pattern)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error is %T, want *ParseError", tt.pattern, err)
			}
			if *perr != tt.want {
				t.Errorf("Parse(%q) error = %+v, want %+v", tt.pattern, *perr, tt.want)
			}
		})
	}
}

func TestParse_ErrorMessages(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{`a\bc`, `parse error: invalid escape at position 2: 'b'`},
		{"*a", "parse error: no expression before repetition operator at position 0"},
		{"a)", "parse error: unmatched right parenthesis at position 1"},
		{"(a", "parse error: missing right parenthesis"},
		{"", "parse error: empty pattern"},
	}

	for _, tt := range tests {
		_, err := Parse(tt.pattern)
		if err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", tt.pattern)
		}
		if err.Error() != tt.want {
			t.Errorf("Parse(%q) error message = %q, want %q", tt.pattern, err.Error(), tt.want)
		}
	}
}
