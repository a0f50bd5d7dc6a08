package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shu-kitamura/regex-dfa/internal/suite"
)

var suiteCmd = &cobra.Command{
	Use:   "suite <file.yaml>",
	Short: "Run a YAML-defined match suite",
	Long: "Suite reads a YAML file of patterns with expected accept/reject " +
		"inputs, compiles each pattern, and reports every expectation that " +
		"does not hold.\n\n" +
		"File format:\n\n" +
		"  cases:\n" +
		"    - pattern: \"abc(def|ghi)\"\n" +
		"      accept: [abcdef, abcghi]\n" +
		"      reject: [abc, abcdefghi]",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		doc, err := suite.Parse(data)
		if err != nil {
			return err
		}
		failures, err := suite.Run(doc)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(failures) > 0 {
			for _, f := range failures {
				fmt.Fprintln(out, f)
			}
			fmt.Fprintf(out, "%d of %d expectations failed\n", len(failures), countExpectations(doc))
			return errExitSilently
		}
		fmt.Fprintf(out, "ok: %d expectations across %d patterns\n", countExpectations(doc), len(doc.Cases))
		return nil
	},
}

func countExpectations(doc suite.Document) int {
	n := 0
	for _, c := range doc.Cases {
		n += len(c.Accept) + len(c.Reject)
	}
	return n
}
