// Package regexdfa compiles regular expressions into deterministic
// finite automata and matches whole input strings against them.
//
// A pattern is parsed into an AST, assembled into a Thompson NFA, and
// determinized via subset construction. The DFA is the only artifact
// kept after compilation; matching is a single pass over the input with
// no backtracking.
//
// Supported syntax: literal characters, alternation (|), implicit
// concatenation, Kleene star (*), grouping via parentheses, and the
// escape set {\, (, ), |, *}.
//
// Basic usage:
//
//	re, err := regexdfa.Compile("abc(def|ghi)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("abcdef") // true
//	re.MatchString("abc")    // false
//
// Matching is whole-string: the entire input must be derivable from the
// pattern, unlike the substring search of the standard library's regexp.
package regexdfa

import (
	"github.com/coregx/ahocorasick"

	"github.com/shu-kitamura/regex-dfa/dfa"
	"github.com/shu-kitamura/regex-dfa/literal"
	"github.com/shu-kitamura/regex-dfa/nfa"
	"github.com/shu-kitamura/regex-dfa/syntax"
)

// Regex is a compiled regular expression. It is immutable and safe for
// concurrent use by multiple goroutines.
type Regex struct {
	pattern string
	nfa     *nfa.NFA
	dfa     *dfa.DFA

	// literals is an Aho-Corasick automaton over the pattern's complete
	// literal set, built only when the pattern denotes a small finite
	// language. It accelerates matching but never changes the answer:
	// the DFA remains the source of truth.
	literals *ahocorasick.Automaton
}

// Compile compiles a pattern. The returned error, if any, is a
// *syntax.ParseError describing the position and kind of the failure.
func Compile(pattern string) (*Regex, error) {
	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	n := nfa.Compile(ast)
	re := &Regex{
		pattern: pattern,
		nfa:     n,
		dfa:     dfa.Determinize(n),
	}

	if seq := literal.New(literal.DefaultConfig()).Extract(ast); seq.Complete() && !seq.IsEmpty() && !seq.HasEmpty() {
		builder := ahocorasick.NewBuilder()
		for i := 0; i < seq.Len(); i++ {
			builder.AddPattern(seq.Get(i))
		}
		// A build failure only disables the fast path.
		if auto, err := builder.Build(); err == nil {
			re.literals = auto
		}
	}

	return re, nil
}

// MustCompile compiles a pattern and panics if it fails.
// Useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexdfa: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// MatchString reports whether the entire string s matches the pattern.
func (r *Regex) MatchString(s string) bool {
	if r.literals != nil {
		m := r.literals.Find([]byte(s), 0)
		if m == nil {
			// No literal of the (complete) set occurs anywhere in the
			// input, so the input cannot equal one of them.
			return false
		}
		if m.Start == 0 && m.End == len(s) {
			return true
		}
		// A partial hit proves nothing either way; fall through.
	}
	return r.dfa.MatchString(s)
}

// Match reports whether the entire byte slice b matches the pattern,
// decoding it as UTF-8.
func (r *Regex) Match(b []byte) bool {
	return r.MatchString(string(b))
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// DFA returns the compiled deterministic automaton.
func (r *Regex) DFA() *dfa.DFA {
	return r.dfa
}

// NFA returns the intermediate nondeterministic automaton. It is kept
// only for inspection (e.g. Graphviz export); matching always runs on
// the DFA.
func (r *Regex) NFA() *nfa.NFA {
	return r.nfa
}
