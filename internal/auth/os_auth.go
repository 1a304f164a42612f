// Package auth provides OS-level device-owner authentication (Touch ID,
// password, polkit) behind a synchronous interface.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// UnknownReason is reported when the platform gives no reason for a failure.
const UnknownReason = "Unknown error"

// Authenticator is the interface for OS-specific authentication.
type Authenticator interface {
	// CanEvaluate returns nil if device-owner authentication can run on this
	// system, or an error describing why it cannot.
	CanEvaluate() error
	// Evaluate prompts the user and blocks until the platform answers.
	// reason is shown to the user explaining why authentication is needed.
	Evaluate(ctx context.Context, reason string) error
}

// UnavailableError means the platform cannot evaluate the authentication
// policy at all (no enrolled biometrics, no password, no helper binary).
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return "authentication not available: " + e.DisplayReason()
}

// DisplayReason returns the platform reason, or UnknownReason when empty.
func (e *UnavailableError) DisplayReason() string {
	if e.Reason == "" {
		return UnknownReason
	}
	return e.Reason
}

// FailedError means the user was prompted and did not authenticate.
type FailedError struct {
	Reason string
}

func (e *FailedError) Error() string {
	if e.Reason == "" {
		return "authentication failed"
	}
	return "authentication failed: " + e.Reason
}

// Service runs a single authentication through an Authenticator.
type Service struct {
	authenticator Authenticator
}

// NewService creates a service backed by the platform authenticator.
func NewService() *Service {
	return NewServiceWith(newPlatformAuthenticator())
}

// NewServiceWith creates a service backed by authenticator.
func NewServiceWith(authenticator Authenticator) *Service {
	return &Service{authenticator: authenticator}
}

// Authenticate checks availability, then prompts the user once.
// Returns nil only if the user authenticated.
func (s *Service) Authenticate(ctx context.Context, reason string) error {
	if err := s.authenticator.CanEvaluate(); err != nil {
		var unavailable *UnavailableError
		if errors.As(err, &unavailable) {
			return unavailable
		}
		return &UnavailableError{Reason: err.Error()}
	}

	if err := s.authenticator.Evaluate(ctx, reason); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		var failed *FailedError
		if errors.As(err, &failed) {
			return failed
		}
		return fmt.Errorf("authentication failed: %w", err)
	}
	return nil
}
