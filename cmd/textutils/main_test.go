package main

import (
	"testing"

	"github.com/rcarmo/go-textutils/pkg/core"
	"github.com/rcarmo/go-textutils/pkg/testutil"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		input    string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{
			name:     "subcommand_cutit",
			argv:     []string{"/usr/bin/textutils", "cutit", "-d", ",", "-f", "2,4"},
			input:    "Harder, Better, Faster, Stronger",
			wantCode: core.ExitSuccess,
			wantOut:  " Better, Stronger\n",
		},
		{
			name:     "linked_wc",
			argv:     []string{"/usr/local/bin/wc"},
			input:    "Despite all my rage, I am still just a rat in a cage",
			wantCode: core.ExitSuccess,
			wantOut:  "1 13 52\n",
		},
		{
			name:     "no_applet",
			argv:     []string{"textutils"},
			wantCode: core.ExitFailure,
			wantErr:  "Currently defined functions:\n cutit wc\n",
		},
		{
			name:     "unknown_applet",
			argv:     []string{"textutils", "sort"},
			wantCode: core.ExitFailure,
			wantErr:  "textutils: applet not found: sort\nCurrently defined functions:\n cutit wc\n",
		},
		{
			name:     "empty_argv",
			argv:     nil,
			wantCode: core.ExitFailure,
			wantErr:  "Currently defined functions:\n cutit wc\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdio, out, errBuf := testutil.CaptureStdio(tt.input)
			code := run(stdio, tt.argv)
			testutil.AssertExitCode(t, code, tt.wantCode)
			testutil.AssertOutput(t, out.String(), tt.wantOut)
			if tt.wantErr != "" {
				testutil.AssertOutput(t, errBuf.String(), tt.wantErr)
			}
		})
	}
}
