package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	regexdfa "github.com/shu-kitamura/regex-dfa"
)

var matchQuiet bool

var matchCmd = &cobra.Command{
	Use:   "match <pattern> [input...]",
	Short: "Match inputs against a pattern",
	Long: "Match compiles the pattern and reports, for each input, whether " +
		"the entire input matches. With no inputs, lines are read from stdin.\n\n" +
		"The exit status is 0 when every input matched and 1 otherwise.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		re, err := regexdfa.Compile(args[0])
		if err != nil {
			return err
		}

		inputs := args[1:]
		if len(inputs) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				inputs = append(inputs, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return err
			}
		}

		allMatched := true
		for _, input := range inputs {
			matched := re.MatchString(input)
			if !matched {
				allMatched = false
			}
			if !matchQuiet {
				verdict := "no match"
				if matched {
					verdict = "match"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", verdict, input)
			}
		}
		if !allMatched {
			return errExitSilently
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().BoolVarP(&matchQuiet, "quiet", "q", false, "suppress per-input output, use only the exit status")
}
