// Command textutils is a multi-call binary for the cutit and wc applets.
// It runs as "textutils APPLET [ARGS]" or through a link named after the applet.
package main

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/rcarmo/go-textutils/pkg/applets/cutit"
	"github.com/rcarmo/go-textutils/pkg/applets/wc"
	"github.com/rcarmo/go-textutils/pkg/core"
)

const binaryName = "textutils"

type appletFunc func(stdio *core.Stdio, args []string) int

var applets = map[string]appletFunc{
	"cutit": cutit.Run,
	"wc":    wc.Run,
}

func main() {
	os.Exit(run(core.DefaultStdio(), os.Args))
}

func run(stdio *core.Stdio, argv []string) int {
	applet, args := resolveApplet(argv)
	if applet == "" {
		printAppletList(stdio)
		return core.ExitFailure
	}

	fn, ok := applets[applet]
	if !ok {
		stdio.Errorf("%s: applet not found: %s\n", binaryName, applet)
		printAppletList(stdio)
		return core.ExitFailure
	}

	// Applets expect args without the applet name.
	return fn(stdio, args)
}

func resolveApplet(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	if filepath.Base(args[0]) == binaryName {
		if len(args) < 2 {
			return "", nil
		}
		return args[1], args[2:]
	}

	// Invoked through a link named after the applet.
	return filepath.Base(args[0]), args[1:]
}

func printAppletList(stdio *core.Stdio) {
	stdio.Errorf("Currently defined functions:\n")
	for _, name := range slices.Sorted(maps.Keys(applets)) {
		stdio.Errorf(" %s", name)
	}
	stdio.Errorf("\n")
}
