package core

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// LineWriter buffers applet output. Lines are flushed as they are written
// when the destination is a terminal, and at Flush otherwise.
type LineWriter struct {
	w         *bufio.Writer
	lineFlush bool
}

// NewLineWriter wraps w, enabling per-line flushing if w is a terminal.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{
		w:         bufio.NewWriter(w),
		lineFlush: IsTerminal(w),
	}
}

// WriteLine writes s followed by a newline.
func (lw *LineWriter) WriteLine(s string) error {
	if _, err := lw.w.WriteString(s); err != nil {
		return err
	}
	if err := lw.w.WriteByte('\n'); err != nil {
		return err
	}
	if lw.lineFlush {
		return lw.w.Flush()
	}
	return nil
}

// Flush writes any buffered output.
func (lw *LineWriter) Flush() error {
	return lw.w.Flush()
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
