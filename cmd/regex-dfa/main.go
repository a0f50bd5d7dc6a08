// Command regex-dfa compiles regular expressions to DFAs and matches
// inputs against them from the command line.
package main

import (
	"errors"
	"fmt"
	"os"
)

// errExitSilently signals a non-zero exit that has already been reported
// (e.g. per-input match output); nothing further is printed.
var errExitSilently = errors.New("exit silently")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errExitSilently) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
