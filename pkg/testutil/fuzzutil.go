package testutil

import (
	"testing"
)

const MaxFuzzBytes = 2048

func ClampBytes(data []byte, max int) []byte {
	if len(data) > max {
		return data[:max]
	}
	return data
}

// FuzzRun runs the applet on input and fails on a panic or an exit code
// other than want. It returns stdout and stderr.
func FuzzRun(t *testing.T, run RunApplet, args []string, input string, want int) (string, string) {
	t.Helper()
	var (
		out, errOut string
		code        int
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("applet panicked on %q: %v", input, r)
			}
		}()
		o, e, c := CaptureAndRun(t, run, args, input)
		out, errOut, code = o.String(), e.String(), c
	}()
	if code != want {
		t.Fatalf("exit code = %d, want %d (stderr %q)", code, want, errOut)
	}
	return out, errOut
}
