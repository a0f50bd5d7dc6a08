package literal

import (
	"sort"

	"github.com/shu-kitamura/regex-dfa/syntax"
)

// ExtractorConfig configures literal extraction limits.
type ExtractorConfig struct {
	// MaxLiterals caps the number of literals to extract. Concatenating
	// alternations multiplies branch counts, so without a cap a short
	// pattern like (a|b)(a|b)(a|b)... produces an exponential set.
	// Extraction gives up (returns an incomplete Seq) past the cap.
	// Default: 64.
	MaxLiterals int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{MaxLiterals: 64}
}

// Extractor computes the literal language of a pattern.
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = DefaultConfig().MaxLiterals
	}
	return &Extractor{config: config}
}

// Extract returns the complete literal set of the pattern's language, or
// an incomplete Seq when the language is infinite (the pattern contains a
// star) or larger than the configured cap.
func (e *Extractor) Extract(node *syntax.Node) *Seq {
	lits, ok := e.language(node)
	if !ok {
		return &Seq{}
	}
	lits = dedupe(lits)
	if len(lits) > e.config.MaxLiterals {
		return &Seq{}
	}
	out := make([][]byte, len(lits))
	for i, lit := range lits {
		out[i] = []byte(lit)
	}
	return &Seq{literals: out, complete: true}
}

// language recursively computes the language of a subtree. The second
// return value is false when the language is infinite or too large.
func (e *Extractor) language(node *syntax.Node) ([]string, bool) {
	switch node.Op {
	case syntax.OpChar:
		return []string{string(node.Char)}, true

	case syntax.OpEmpty:
		return []string{""}, true

	case syntax.OpStar:
		return nil, false

	case syntax.OpUnion:
		left, ok := e.language(node.Left)
		if !ok {
			return nil, false
		}
		right, ok := e.language(node.Right)
		if !ok {
			return nil, false
		}
		merged := append(left, right...)
		if len(merged) > e.config.MaxLiterals {
			return nil, false
		}
		return merged, true

	case syntax.OpConcat:
		left, ok := e.language(node.Left)
		if !ok {
			return nil, false
		}
		right, ok := e.language(node.Right)
		if !ok {
			return nil, false
		}
		if len(left)*len(right) > e.config.MaxLiterals {
			return nil, false
		}
		product := make([]string, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				product = append(product, l+r)
			}
		}
		return product, true

	default:
		return nil, false
	}
}

func dedupe(lits []string) []string {
	sort.Strings(lits)
	out := lits[:0]
	for i, lit := range lits {
		if i == 0 || lit != out[len(out)-1] {
			out = append(out, lit)
		}
	}
	return out
}
