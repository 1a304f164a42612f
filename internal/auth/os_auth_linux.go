//go:build linux

package auth

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// pkexec exit status when the user dismissed the dialog or failed to authenticate.
const (
	pkexecNotAuthorized = 127
	pkexecDismissed     = 126
)

// linuxAuthenticator uses polkit (pkexec) for authentication on Linux.
type linuxAuthenticator struct {
	path string
}

func newPlatformAuthenticator() Authenticator {
	path, _ := exec.LookPath("pkexec")
	return &linuxAuthenticator{path: path}
}

// CanEvaluate requires pkexec on PATH.
func (a *linuxAuthenticator) CanEvaluate() error {
	if a.path == "" {
		return &UnavailableError{Reason: "pkexec not found"}
	}
	return nil
}

// Evaluate runs a no-op through pkexec so polkit authenticates the user.
// polkit chooses its own message; reason is not shown.
func (a *linuxAuthenticator) Evaluate(ctx context.Context, reason string) error {
	cmd := exec.CommandContext(ctx, a.path, "/bin/true")
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &FailedError{Reason: pkexecReason(exitErr.ExitCode())}
	}
	return fmt.Errorf("pkexec failed: %w", err)
}

func pkexecReason(code int) string {
	switch code {
	case pkexecDismissed:
		return "authentication dialog dismissed"
	case pkexecNotAuthorized:
		return "not authorized"
	default:
		return fmt.Sprintf("pkexec exited with status %d", code)
	}
}
