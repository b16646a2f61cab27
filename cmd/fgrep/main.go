// Command fgrep searches files for a literal pattern.
//
//	usage: fgrep [flags] pattern path...
//
// Exit status is 0 when something matched, 1 when nothing did and 2 on error.
package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/scottcagno/fjs/pkg/grep"
	"github.com/scottcagno/fjs/pkg/logging"
	"github.com/scottcagno/fjs/pkg/search"
	"github.com/scottcagno/fjs/pkg/util"
	"github.com/spf13/cobra"
)

const envMaxPatternLength = "FJS_MAX_PATTERN_LENGTH"

var errNoMatch = errors.New("fgrep: no match")

func main() {
	logging.Init(os.Stderr, "fgrep")
	ctx, stop := util.HandleSignalInterrupt(context.Background())
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if code := exitCode(logging.NewFailureLogger(os.Stderr), err); code != 0 {
		os.Exit(code)
	}
}

// exitCode maps the result of a run to the exit status, logging real
// failures to errLog.
func exitCode(errLog *log.Logger, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoMatch):
		return 1
	default:
		errLog.Print(err)
		return 2
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &grep.Options{}
	var maxLen int
	cmd := &cobra.Command{
		Use:   "fgrep pattern path...",
		Short: "Search files for a literal pattern",
		Args:  cobra.MinimumNArgs(2),
		// main reports errors, no match is only an exit status
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts.Config = &search.Config{
				AlphabetSize:     search.AlphabetSize,
				MaxPatternLength: maxLen,
			}
			n, err := grep.Grep(cmd.Context(), cmd.OutOrStdout(), []byte(args[0]), args[1:], opts)
			if err != nil {
				return err
			}
			slog.Debug("grep finished", "matches", n, "paths", len(args)-1)
			if n == 0 {
				return errNoMatch
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.IntVarP(&opts.Workers, "workers", "j", runtime.GOMAXPROCS(0), "files searched at once")
	fs.BoolVar(&opts.Color, "color", !color.NoColor, "highlight matches")
	fs.BoolVarP(&opts.CountOnly, "count", "c", false, "print only a count of matches per file")
	fs.IntVar(&maxLen, "max-pattern-length",
		util.EnvInt(envMaxPatternLength, search.DefaultMaxPatternLength),
		"longest pattern accepted (env "+envMaxPatternLength+")")
	return cmd
}
