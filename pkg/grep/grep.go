// Package grep searches files for a literal byte pattern using FJS.
package grep

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/scottcagno/fjs/pkg/mmap"
	"github.com/scottcagno/fjs/pkg/search"
	"golang.org/x/sync/errgroup"
)

// Options controls a Grep run. The zero value is usable.
type Options struct {
	// Workers is the number of files searched at once. Defaults to GOMAXPROCS.
	Workers int
	// Color highlights file names and matches with ANSI escapes.
	Color bool
	// CountOnly prints file:count instead of every match.
	CountOnly bool
	// Config bounds the pattern; nil means search.DefaultConfig().
	Config *search.Config
}

func checkOptions(opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}
	o := *opts
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Config == nil {
		o.Config = search.DefaultConfig()
	}
	return &o
}

type result struct {
	out     bytes.Buffer
	matches int
	err     error
}

// Grep searches every file named by paths for pattern and writes one line
// per match to w, as path:line:col:text. A directory is searched
// recursively; a path whose base name holds glob meta characters searches
// the files under its directory whose path matches it. Output is ordered by
// file path. Grep returns the total number of matches; files that cannot be
// read are logged, skipped and reported in the returned error.
func Grep(ctx context.Context, w io.Writer, pattern []byte, paths []string, opts *Options) (int, error) {
	opts = checkOptions(opts)
	p, err := opts.Config.Compile(pattern)
	if err != nil {
		return 0, err
	}
	files, err := collect(paths)
	if err != nil {
		return 0, err
	}

	results := make([]result, len(files))
	// Per-file failures stay in results; the group only bounds concurrency.
	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i := range files {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res := &results[i]
			res.matches, res.err = searchFile(&res.out, files[i], p, opts)
			return nil
		})
	}
	g.Wait()

	var total int
	var errs []error
	for i := range results {
		res := &results[i]
		if res.err != nil {
			slog.Warn("skipping file", "path", files[i], "err", res.err)
			errs = append(errs, res.err)
			continue
		}
		total += res.matches
		if _, err := res.out.WriteTo(w); err != nil {
			return total, err
		}
	}
	if err := ctx.Err(); err != nil {
		return total, err
	}
	return total, errors.Join(errs...)
}

// collect expands paths into a sorted list of regular files.
func collect(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}
	for _, path := range paths {
		// "clean" path
		path = filepath.Clean(path)
		dir, file := filepath.Split(path)
		glob := strings.ContainsAny(file, "*?[")
		root := path
		if glob {
			if dir == "" {
				dir = "."
			}
			root = dir
		}
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(root, func(lpath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if glob {
				// check for local file path match
				if ok, _ := filepath.Match(path, lpath); !ok {
					return nil
				}
			}
			add(lpath)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	sort.Strings(files)
	return files, nil
}

func searchFile(w *bytes.Buffer, path string, p *search.Pattern, opts *Options) (int, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	buf := m.Bytes()
	if opts.CountOnly {
		n := p.Count(buf)
		if n > 0 {
			fmt.Fprintf(w, "%s:%d\n", paint(path, color.FgMagenta, opts.Color), n)
		}
		return n, nil
	}

	var n int
	lc := lineCounter{buf: buf}
	for pos := range p.All(buf) {
		n++
		line, start, end := lc.locate(pos)
		text := buf[start:end]
		col := pos - start
		stop := col + p.Len()
		if stop > len(text) {
			// the match runs over the end of the line
			stop = len(text)
		}
		fmt.Fprintf(w, "%s:%d:%d:%s%s%s\n",
			paint(path, color.FgMagenta, opts.Color), line, col+1,
			text[:col], paint(string(text[col:stop]), color.FgRed, opts.Color), text[stop:])
	}
	return n, nil
}

func paint(s string, attr color.Attribute, enabled bool) string {
	c := color.New(attr, color.Bold)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// lineCounter maps increasing offsets to 1-based line numbers without
// rescanning the buffer from the start each time.
type lineCounter struct {
	buf  []byte
	pos  int // offset lines has been counted up to
	line int // newlines seen before pos
}

// locate returns the line number of off and the bounds of that line,
// excluding the newline. Offsets must not decrease between calls.
func (lc *lineCounter) locate(off int) (line, start, end int) {
	lc.line += bytes.Count(lc.buf[lc.pos:off], []byte{'\n'})
	lc.pos = off
	start = bytes.LastIndexByte(lc.buf[:off], '\n') + 1
	end = bytes.IndexByte(lc.buf[off:], '\n')
	if end < 0 {
		end = len(lc.buf)
	} else {
		end += off
	}
	return lc.line + 1, start, end
}
