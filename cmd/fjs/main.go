// Command fjs reports every position where a pattern occurs in a text.
//
//	usage: fjs [--max-pattern-length n] text pattern
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scottcagno/fjs/pkg/logging"
	"github.com/scottcagno/fjs/pkg/search"
	"github.com/scottcagno/fjs/pkg/util"
	"github.com/spf13/cobra"
)

const envMaxPatternLength = "FJS_MAX_PATTERN_LENGTH"

func main() {
	logging.Init(os.Stderr, "fjs")
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var maxLen int
	cmd := &cobra.Command{
		Use:   "fjs text pattern",
		Short: "Report every position where pattern occurs in text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// past argument checks, a failure is not a usage problem
			cmd.SilenceUsage = true
			return run(cmd.OutOrStdout(), args[0], args[1], maxLen)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().IntVar(&maxLen, "max-pattern-length",
		util.EnvInt(envMaxPatternLength, search.DefaultMaxPatternLength),
		"longest pattern accepted (env "+envMaxPatternLength+")")
	return cmd
}

func run(w io.Writer, text, pattern string, maxLen int) error {
	conf := &search.Config{
		AlphabetSize:     search.AlphabetSize,
		MaxPatternLength: maxLen,
	}
	var matches int
	err := conf.Search([]byte(pattern), []byte(text), func(pos int) {
		matches++
		fmt.Fprintf(w, "match %d found at position %d\n", matches, pos)
	})
	if errors.Is(err, search.ErrPatternTooLong) {
		return fmt.Errorf("reconfigure with --max-pattern-length >= %d: %w", len(pattern), err)
	}
	if err != nil {
		return err
	}
	slog.Debug("search finished", "text", len(text), "pattern", len(pattern), "matches", matches)
	return nil
}
