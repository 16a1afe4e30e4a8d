// Package wc implements the wc (word count) command.
package wc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rcarmo/go-textutils/pkg/core"
)

const usage = `Usage: wc [-l | -w | -c]

Print newline, word, and byte counts from standard input.

The options below may be used to select which counts are printed, always in
the following order: newline, word, byte.

    -c      Print byte counts
    -l      Print newline counts
    -w      Print word counts
    -h      Print this help and exit
`

// ErrHelp is returned by ParseArgs when -h or --help is given.
var ErrHelp = errors.New("help requested")

// Options holds wc command options.
// The zero value selects every count.
type Options struct {
	Lines bool // -l: count lines
	Words bool // -w: count words
	Bytes bool // -c: count bytes
}

// Counts holds the counts for a stream.
type Counts struct {
	Lines int64
	Words int64
	Bytes int64
}

// ParseArgs parses wc arguments into Options.
func ParseArgs(args []string) (Options, error) {
	var opts Options
	fs := pflag.NewFlagSet("wc", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.BoolVarP(&opts.Lines, "lines", "l", false, "print the newline counts")
	fs.BoolVarP(&opts.Words, "words", "w", false, "print the word counts")
	fs.BoolVarP(&opts.Bytes, "bytes", "c", false, "print the byte counts")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Options{}, ErrHelp
		}
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return opts, nil
}

// CountStream reads in to EOF and returns its newline, word and byte
// counts. A final line without a terminator still counts as a line.
func CountStream(in io.Reader) (Counts, error) {
	var c Counts
	br := bufio.NewReader(in)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			c.Lines++
			c.Words += int64(len(strings.Fields(line)))
			c.Bytes += int64(len(line))
		}
		if err == io.EOF {
			return c, nil
		}
		if err != nil {
			return c, err
		}
	}
}

// FormatCounts renders the selected counts in newline, word, byte order,
// separated by single spaces.
func FormatCounts(c Counts, opts Options) string {
	if !opts.Lines && !opts.Words && !opts.Bytes {
		opts = Options{Lines: true, Words: true, Bytes: true}
	}
	fields := make([]string, 0, 3)
	if opts.Lines {
		fields = append(fields, strconv.FormatInt(c.Lines, 10))
	}
	if opts.Words {
		fields = append(fields, strconv.FormatInt(c.Words, 10))
	}
	if opts.Bytes {
		fields = append(fields, strconv.FormatInt(c.Bytes, 10))
	}
	return strings.Join(fields, " ")
}

// Run executes the wc command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	opts, err := ParseArgs(args)
	if err != nil {
		if errors.Is(err, ErrHelp) {
			return core.Usage(stdio, usage)
		}
		return core.UsageError(stdio, "wc", err.Error(), usage)
	}

	counts, err := CountStream(stdio.In)
	if err != nil {
		return core.IOError(stdio, "wc", err)
	}

	w := core.NewLineWriter(stdio.Out)
	if err := w.WriteLine(FormatCounts(counts, opts)); err != nil {
		return core.IOError(stdio, "wc", err)
	}
	if err := w.Flush(); err != nil {
		return core.IOError(stdio, "wc", err)
	}
	return core.ExitSuccess
}
