//go:build darwin && !cgo

package auth

import (
	"context"
	"errors"

	"github.com/peternagy/confirm/internal/osascript"
)

// passwordScript asks for an administrator password through the standard
// security prompt. The prompt text arrives as item 1 of argv.
var passwordScript = []string{
	"on run argv",
	`do shell script "/usr/bin/true" with administrator privileges with prompt (item 1 of argv)`,
	"end run",
}

// macOSAuthenticator is used when the binary is built without cgo and
// LocalAuthentication cannot be reached. It falls back to a password prompt.
type macOSAuthenticator struct{}

func newPlatformAuthenticator() Authenticator {
	return &macOSAuthenticator{}
}

// CanEvaluate requires osascript on PATH.
func (a *macOSAuthenticator) CanEvaluate() error {
	if !osascript.Available() {
		return &UnavailableError{Reason: "osascript not found"}
	}
	return nil
}

// Evaluate prompts for the administrator password on macOS.
func (a *macOSAuthenticator) Evaluate(ctx context.Context, reason string) error {
	_, err := osascript.Run(ctx, passwordScript, reason)
	if err == nil {
		return nil
	}
	var scriptErr *osascript.ScriptError
	if errors.As(err, &scriptErr) {
		return &FailedError{Reason: scriptErr.Message}
	}
	return err
}
