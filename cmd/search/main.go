// Command search times every searcher in pkg/search against the same text.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/scottcagno/fjs/pkg/logging"
	"github.com/scottcagno/fjs/pkg/mmap"
	"github.com/scottcagno/fjs/pkg/search"
	"github.com/scottcagno/fjs/pkg/util"
	"github.com/spf13/cobra"
)

var defaultPatterns = []string{
	`I do not say these things for a dollar or to fill up the time while I wait for a boat`,
	`pocketless`,
	`baz_DOES_NOT_EXIST`,
	`I ascend to the foretruck`,
	`bar_DOES_NOT_EXIST`,
	`Waiting in gloom, protected by frost`,
	`eyes that have shed tears`,
	`Undrape!`,
	`foo_DOES_NOT_EXIST`,
}

func main() {
	logging.Init(os.Stderr, "search")
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		file string
		size int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "search [flags] [pattern...]",
		Short: "Compare searcher timings over one text",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer util.TimeThis(util.Msg("search"))
			patterns := args
			if len(patterns) == 0 {
				patterns = defaultPatterns
			}
			text, closeText, err := loadText(file, size, seed, patterns)
			if err != nil {
				return err
			}
			defer closeText()
			report := logging.NewReportLogger(cmd.OutOrStdout())
			for _, s := range search.Searchers() {
				TimeSearcher(report, s, text, patterns)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	fs := cmd.Flags()
	fs.StringVarP(&file, "file", "f", "", "search this file instead of a generated text")
	fs.IntVar(&size, "size", 1<<20, "length of the generated text")
	fs.Int64Var(&seed, "seed", 1, "seed for the generated text")
	return cmd
}

// loadText maps file, or generates a random text of the given size with
// every other pattern planted in it.
func loadText(file string, size int, seed int64, patterns []string) (string, func(), error) {
	if file != "" {
		m, err := mmap.Open(file)
		if err != nil {
			return "", nil, err
		}
		slog.Debug("mapped text", "file", file, "bytes", m.Len())
		return string(m.Bytes()), func() { m.Close() }, nil
	}
	r := util.NewRand(seed)
	text := []byte(util.RandStringFrom(r, size, ""))
	for i := 0; i < len(patterns); i += 2 {
		p := patterns[i]
		if len(p) > len(text) {
			continue
		}
		copy(text[r.Intn(len(text)-len(p)+1):], p)
	}
	return string(text), func() {}, nil
}

// TimeSearcher runs every pattern through s, reporting the hit count, the
// first index and the time taken per pattern, then the total.
func TimeSearcher(report *log.Logger, s search.Searcher, text string, patterns []string) {
	report.Printf("%s", s)
	t1 := time.Now()
	for i := range patterns {
		t3 := time.Now()
		n := s.FindAllString(text, patterns[i])
		first := -1
		if len(n) > 0 {
			first = n[0]
		}
		report.Print(util.FormatTime(
			fmt.Sprintf("Found %q %d times, first at index %d", patterns[i], len(n), first),
			t3, time.Now()))
	}
	report.Print(util.FormatTime(s.String()+" total", t1, time.Now()))
}
