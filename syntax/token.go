package syntax

// TokenKind identifies the lexical category of a token.
type TokenKind uint8

const (
	// TokenChar is a literal character, including escaped metacharacters.
	TokenChar TokenKind = iota

	// TokenUnion is the alternation operator '|'.
	TokenUnion

	// TokenStar is the repetition operator '*'.
	TokenStar

	// TokenLeftParen is an opening group parenthesis.
	TokenLeftParen

	// TokenRightParen is a closing group parenthesis.
	TokenRightParen

	// TokenEOF marks the end of the pattern.
	TokenEOF
)

// Token is a single lexical unit of a pattern. Pos is the rune index of
// the token in the pattern; Char is meaningful only for TokenChar.
type Token struct {
	Kind TokenKind
	Char rune
	Pos  int
}

// escapable is the set of characters that may follow a backslash.
const escapable = `\()|*`

// Scanner tokenizes a pattern one rune at a time. It owns the lexical
// concerns of the grammar: metacharacter classification and escape
// validation.
type Scanner struct {
	runes []rune
	pos   int
}

// NewScanner returns a Scanner over pattern.
func NewScanner(pattern string) *Scanner {
	return &Scanner{runes: []rune(pattern)}
}

// Next returns the next token. After the pattern is exhausted it keeps
// returning TokenEOF. An escape of a character outside the supported set
// fails with ErrInvalidEscape at the position of the escaped character.
func (s *Scanner) Next() (Token, error) {
	if s.pos >= len(s.runes) {
		return Token{Kind: TokenEOF, Pos: s.pos}, nil
	}

	pos := s.pos
	r := s.runes[s.pos]
	s.pos++

	switch r {
	case '\\':
		if s.pos >= len(s.runes) {
			// A dangling backslash escapes nothing and is dropped.
			return Token{Kind: TokenEOF, Pos: s.pos}, nil
		}
		escaped := s.runes[s.pos]
		escPos := s.pos
		s.pos++
		if !isEscapable(escaped) {
			return Token{}, &ParseError{Kind: ErrInvalidEscape, Pos: escPos, Char: escaped}
		}
		return Token{Kind: TokenChar, Char: escaped, Pos: escPos}, nil
	case '|':
		return Token{Kind: TokenUnion, Pos: pos}, nil
	case '*':
		return Token{Kind: TokenStar, Pos: pos}, nil
	case '(':
		return Token{Kind: TokenLeftParen, Pos: pos}, nil
	case ')':
		return Token{Kind: TokenRightParen, Pos: pos}, nil
	default:
		return Token{Kind: TokenChar, Char: r, Pos: pos}, nil
	}
}

func isEscapable(r rune) bool {
	for _, e := range escapable {
		if r == e {
			return true
		}
	}
	return false
}
