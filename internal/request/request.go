// Package request turns the process argument list into a confirmation request.
package request

import (
	"errors"
	"fmt"
	"strings"
)

// Flag tokens recognized by Parse. Any other token is message text.
const (
	FlagIcon = "--icon"
	FlagAuth = "--auth"
	FlagHelp = "--help"
)

// ErrHelp is returned when the caller asked for usage text, either with --help
// or by passing no arguments at all.
var ErrHelp = errors.New("help requested")

// Request is the parsed form of one invocation.
type Request struct {
	Message     string
	IconPath    string
	RequireAuth bool
}

// UsageError reports arguments the user must correct before retrying.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Parse scans args (without the program name) once, left to right.
// --help anywhere wins over every other rule.
func Parse(args []string) (Request, error) {
	if len(args) == 0 {
		return Request{}, ErrHelp
	}
	for _, arg := range args {
		if arg == FlagHelp {
			return Request{}, ErrHelp
		}
	}

	var req Request
	var words []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case FlagIcon:
			if i+1 >= len(args) {
				return Request{}, &UsageError{Message: FlagIcon + " requires a path argument"}
			}
			i++
			req.IconPath = args[i]
		case FlagAuth:
			req.RequireAuth = true
		default:
			words = append(words, args[i])
		}
	}

	req.Message = strings.Join(words, " ")
	if req.Message == "" {
		return Request{}, &UsageError{Message: "Message is required"}
	}
	return req, nil
}

// Usage returns the help text for program.
func Usage(program string) string {
	return fmt.Sprintf(`Usage: %[1]s [--icon <path>] [--auth] [--help] <message...>

Show a confirmation dialog and exit 0 if the user accepts, 1 otherwise.

Options:
  --icon <path>  Image to show as the dialog icon (ignored if it cannot be loaded)
  --auth         Require device-owner authentication (Touch ID or password)
                 instead of a Yes/No dialog
  --help         Show this help

Examples:
  %[1]s "Deploy to production?"
  %[1]s --icon ~/icons/rocket.png Ship it now
  %[1]s --auth "Reveal the stored secret"
`, program)
}
