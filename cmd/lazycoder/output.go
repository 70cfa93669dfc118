package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// printError writes a diagnostic for err to w. The prefix is coloured only
// when w is a terminal.
func printError(w io.Writer, err error) {
	prefix := color.New(color.FgRed, color.Bold)
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	fmt.Fprintf(w, "%s %s\n", prefix.Sprint("error:"), err)
}
