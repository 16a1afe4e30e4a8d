// Command cutit is a standalone entry point for the cutit applet.
package main

import (
	"os"

	"github.com/rcarmo/go-textutils/pkg/applets/cutit"
	"github.com/rcarmo/go-textutils/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(cutit.Run(stdio, os.Args[1:]))
}
