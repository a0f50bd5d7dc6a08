// Package suite loads and runs YAML-defined match suites.
//
// A suite file lists patterns with the inputs they must accept and
// reject:
//
//	cases:
//	  - pattern: "abc(def|ghi)"
//	    accept: [abcdef, abcghi]
//	    reject: [abc, abcdefghi]
//
// The CLI's suite subcommand uses this to check a compiled engine
// against expectations kept outside the test tree.
package suite

import (
	"fmt"

	"gopkg.in/yaml.v3"

	regexdfa "github.com/shu-kitamura/regex-dfa"
)

// Case is one pattern with its expected accept/reject inputs.
type Case struct {
	Pattern string   `yaml:"pattern"`
	Accept  []string `yaml:"accept,omitempty"`
	Reject  []string `yaml:"reject,omitempty"`
}

// Document is a parsed suite file.
type Document struct {
	Cases []Case `yaml:"cases"`
}

// Parse decodes a YAML suite document.
func Parse(in []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return Document{}, fmt.Errorf("suite: %w", err)
	}
	if len(doc.Cases) == 0 {
		return Document{}, fmt.Errorf("suite: no cases")
	}
	for i, c := range doc.Cases {
		if c.Pattern == "" {
			return Document{}, fmt.Errorf("suite: case %d has no pattern", i)
		}
	}
	return doc, nil
}

// Failure records one input whose match result differed from the
// expectation.
type Failure struct {
	Pattern string
	Input   string
	Want    bool
}

func (f Failure) String() string {
	return fmt.Sprintf("pattern %q: input %q: got match=%v, want %v",
		f.Pattern, f.Input, !f.Want, f.Want)
}

// Run compiles every case's pattern and evaluates its inputs. It returns
// the failed expectations; a compile error aborts the run.
func Run(doc Document) ([]Failure, error) {
	var failures []Failure
	for _, c := range doc.Cases {
		re, err := regexdfa.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("suite: pattern %q: %w", c.Pattern, err)
		}
		for _, input := range c.Accept {
			if !re.MatchString(input) {
				failures = append(failures, Failure{Pattern: c.Pattern, Input: input, Want: true})
			}
		}
		for _, input := range c.Reject {
			if re.MatchString(input) {
				failures = append(failures, Failure{Pattern: c.Pattern, Input: input, Want: false})
			}
		}
	}
	return failures, nil
}
