// Package cutit implements the cutit command, which prints selected
// delimiter-separated fields from each line of its input.
package cutit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rcarmo/go-textutils/pkg/core"
	"github.com/rcarmo/go-textutils/pkg/core/textutil"
)

const usage = `Usage: cutit -d DELIMITER -f FIELDS

Print selected parts of lines from stream to standard output.

    -d DELIMITER    Use DELIMITER instead of TAB for field delimiter
    -f FIELDS       Select only these fields
    -h              Print this help and exit
`

var (
	// ErrHelp is returned by ParseArgs when -h or --help is given.
	ErrHelp = errors.New("help requested")

	errNoArgs         = errors.New("missing arguments")
	errMissingFields  = errors.New("missing list: -f is required")
	errEmptyDelimiter = errors.New("delimiter must not be empty")
)

// Config is the parsed command line.
type Config struct {
	Delimiter string
	Fields    []int
}

// ParseArgs parses cutit arguments into a Config.
func ParseArgs(args []string) (Config, error) {
	if len(args) < 1 {
		return Config{}, errNoArgs
	}

	fs := pflag.NewFlagSet("cutit", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	delimiter := fs.StringP("delimiter", "d", "\t", "field delimiter")
	fieldSpec := fs.StringP("fields", "f", "", "comma-separated field numbers")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, ErrHelp
		}
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if !fs.Changed("fields") {
		return Config{}, errMissingFields
	}
	if *delimiter == "" {
		return Config{}, errEmptyDelimiter
	}

	fields, err := textutil.ParseFieldList(*fieldSpec)
	if err != nil {
		return Config{}, err
	}
	return Config{Delimiter: *delimiter, Fields: fields}, nil
}

// CutLine splits line on delimiter and returns the requested 1-based
// fields in the order given. Fields outside the line are skipped.
func CutLine(line, delimiter string, fields []int) []string {
	return textutil.SelectFields(strings.Split(line, delimiter), fields)
}

// CutStream writes the selected fields of every line read from in to out,
// rejoined with delimiter. Lines may be of any length.
func CutStream(in io.Reader, out io.Writer, delimiter string, fields []int) error {
	w := core.NewLineWriter(out)
	br := bufio.NewReader(in)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			selected := CutLine(line, delimiter, fields)
			if werr := w.WriteLine(strings.Join(selected, delimiter)); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return w.Flush()
		}
		if err != nil {
			return errors.Join(err, w.Flush())
		}
	}
}

// Run executes the cutit command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	cfg, err := ParseArgs(args)
	if err != nil {
		if errors.Is(err, ErrHelp) {
			return core.Usage(stdio, usage)
		}
		return core.UsageError(stdio, "cutit", err.Error(), usage)
	}
	if err := CutStream(stdio.In, stdio.Out, cfg.Delimiter, cfg.Fields); err != nil {
		return core.IOError(stdio, "cutit", err)
	}
	return core.ExitSuccess
}
