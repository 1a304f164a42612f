// Package clifmt highlights terminal output when it is going to a TTY.
package clifmt

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Formatter colorizes text for one output stream.
type Formatter struct {
	color bool
}

// Getenv looks up an environment variable.
type Getenv func(key string) string

// For returns a formatter for w. Color is used only when w is a terminal,
// NO_COLOR is unset and TERM is not "dumb". A nil getenv reads the process
// environment.
func For(w io.Writer, getenv Getenv) Formatter {
	if getenv == nil {
		getenv = os.Getenv
	}
	return Formatter{color: useColor(w, getenv)}
}

// Error renders text in bold red.
func (f Formatter) Error(text string) string {
	return f.colorize("1;31", text)
}

// Warn renders text in yellow.
func (f Formatter) Warn(text string) string {
	return f.colorize("33", text)
}

func (f Formatter) colorize(code string, text string) string {
	if !f.color {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

func useColor(w io.Writer, getenv Getenv) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	if getenv("TERM") == "dumb" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
