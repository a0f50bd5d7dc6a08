package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "regex-dfa",
	Short: "Compile regular expressions to DFAs and match inputs",
	Long: "regex-dfa compiles a pattern to a deterministic finite automaton " +
		"(via Thompson NFA assembly and subset construction) and matches " +
		"whole input strings against it.\n\n" +
		"Supported syntax: literals, alternation (|), concatenation, " +
		"Kleene star (*), grouping, and the escape set {\\, (, ), |, *}.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(matchCmd, dotCmd, suiteCmd)
}
