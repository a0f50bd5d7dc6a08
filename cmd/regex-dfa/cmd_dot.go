package main

import (
	"os"

	"github.com/spf13/cobra"

	regexdfa "github.com/shu-kitamura/regex-dfa"
)

var (
	dotNFA bool
	dotOut string
)

var dotCmd = &cobra.Command{
	Use:   "dot <pattern>",
	Short: "Export a pattern's automaton as Graphviz DOT",
	Long: "Dot compiles the pattern and writes its DFA (or, with --nfa, the " +
		"intermediate Thompson NFA) in Graphviz DOT format.\n\n" +
		"Render with, for example: regex-dfa dot '(a|b)*abb' | dot -Tpng -o graph.png",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		re, err := regexdfa.Compile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if dotOut != "" {
			f, err := os.Create(dotOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		if dotNFA {
			re.NFA().WriteDOT(out)
		} else {
			re.DFA().WriteDOT(out)
		}
		return nil
	},
}

func init() {
	dotCmd.Flags().BoolVar(&dotNFA, "nfa", false, "export the Thompson NFA instead of the DFA")
	dotCmd.Flags().StringVarP(&dotOut, "output", "o", "", "write to file instead of stdout")
}
