// Package osascript runs AppleScript handlers through /usr/bin/osascript.
//
// Scripts are written as an "on run argv" handler so that user-supplied
// strings travel as arguments and never need AppleScript quoting.
package osascript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Binary is the osascript executable looked up on PATH.
const Binary = "osascript"

// CodeUserCanceled is the AppleScript error number for a cancelled dialog.
const CodeUserCanceled = -128

// ScriptError is an AppleScript runtime error reported by osascript.
type ScriptError struct {
	Code    int
	Message string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("osascript: %s (%d)", e.Message, e.Code)
}

// Canceled reports whether the user dismissed the dialog via its cancel button.
func (e *ScriptError) Canceled() bool {
	return e.Code == CodeUserCanceled
}

// IsCanceled reports whether err is a user cancellation.
func IsCanceled(err error) bool {
	var scriptErr *ScriptError
	return errors.As(err, &scriptErr) && scriptErr.Canceled()
}

// Available reports whether osascript is on PATH.
func Available() bool {
	_, err := exec.LookPath(Binary)
	return err == nil
}

// Command builds the osascript argument list: one -e per script line,
// followed by the handler arguments.
func Command(lines []string, args ...string) []string {
	out := make([]string, 0, 2*len(lines)+len(args))
	for _, line := range lines {
		out = append(out, "-e", line)
	}
	return append(out, args...)
}

// Run executes the script and returns its trimmed result. The child process
// is killed when ctx ends, and Run always waits for it to exit.
func Run(ctx context.Context, lines []string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, Binary, Command(lines, args...)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if scriptErr := ParseError(stderr.String()); scriptErr != nil {
			return "", scriptErr
		}
		return "", fmt.Errorf("osascript failed: %w", err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

var errorLine = regexp.MustCompile(`execution error: (.*) \((-?\d+)\)\s*$`)

// ParseError extracts the AppleScript error from osascript's stderr, e.g.
// "0:152: execution error: User canceled. (-128)". Returns nil if stderr
// does not carry one.
func ParseError(stderr string) *ScriptError {
	m := errorLine.FindStringSubmatch(strings.TrimSpace(stderr))
	if m == nil {
		return nil
	}
	code, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	return &ScriptError{Code: code, Message: strings.TrimSpace(m[1])}
}
