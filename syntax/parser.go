package syntax

// parser builds the AST with two working lists and a group stack:
//
//   - seq collects the nodes of the current concatenation run
//   - alts collects finished alternation branches of the current group
//   - on '(' both lists are pushed and restarted; on ')' the group is
//     folded into a single node and appended to the enclosing seq
//
// Alternation folds right-associatively: a|b|c becomes
// Union(a, Union(b, c)). A branch that is empty because it sits between
// two '|' (or between '|' and ')') becomes an Empty node; a trailing
// empty branch is dropped.
type parser struct {
	scanner *Scanner
	seq     []*Node
	alts    []*Node
	stack   []parserFrame
}

// parserFrame saves the working lists of an enclosing group.
type parserFrame struct {
	seq  []*Node
	alts []*Node
}

// Parse parses a pattern into its AST. The returned error, if any, is a
// *ParseError.
func Parse(pattern string) (*Node, error) {
	p := &parser{scanner: NewScanner(pattern)}
	return p.parse()
}

func (p *parser) parse() (*Node, error) {
	for {
		tok, err := p.scanner.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			break
		}

		switch tok.Kind {
		case TokenChar:
			p.seq = append(p.seq, Char(tok.Char))

		case TokenStar:
			if len(p.seq) == 0 {
				return nil, &ParseError{Kind: ErrNoPrev, Pos: tok.Pos}
			}
			last := len(p.seq) - 1
			p.seq[last] = Star(p.seq[last])

		case TokenUnion:
			// An empty seq here is an empty alternation branch.
			p.alts = append(p.alts, foldConcat(p.seq))
			p.seq = nil

		case TokenLeftParen:
			p.stack = append(p.stack, parserFrame{seq: p.seq, alts: p.alts})
			p.seq = nil
			p.alts = nil

		case TokenRightParen:
			if len(p.stack) == 0 {
				return nil, &ParseError{Kind: ErrInvalidRightParen, Pos: tok.Pos}
			}
			frame := p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]

			if len(p.seq) > 0 {
				p.alts = append(p.alts, foldConcat(p.seq))
			}
			group := foldUnion(p.alts)
			p.seq = frame.seq
			p.alts = frame.alts
			if group != nil {
				p.seq = append(p.seq, group)
			}
		}
	}

	if len(p.stack) > 0 {
		return nil, &ParseError{Kind: ErrNoRightParen}
	}

	if len(p.seq) > 0 {
		p.alts = append(p.alts, foldConcat(p.seq))
	}
	ast := foldUnion(p.alts)
	if ast == nil {
		return nil, &ParseError{Kind: ErrEmpty}
	}
	return ast, nil
}

// foldConcat folds a concatenation run into a right-leaning Concat chain.
// An empty run matches the zero-length input.
func foldConcat(seq []*Node) *Node {
	if len(seq) == 0 {
		return Empty()
	}
	ast := seq[len(seq)-1]
	for i := len(seq) - 2; i >= 0; i-- {
		ast = Concat(seq[i], ast)
	}
	return ast
}

// foldUnion folds alternation branches into a right-leaning Union chain.
// Returns nil when there are no branches.
func foldUnion(alts []*Node) *Node {
	if len(alts) == 0 {
		return nil
	}
	ast := alts[len(alts)-1]
	for i := len(alts) - 2; i >= 0; i-- {
		ast = Union(alts[i], ast)
	}
	return ast
}
