//go:build !darwin && !linux

package auth

import (
	"context"
	"runtime"
)

type unsupportedAuthenticator struct{}

func newPlatformAuthenticator() Authenticator {
	return unsupportedAuthenticator{}
}

func (unsupportedAuthenticator) CanEvaluate() error {
	return &UnavailableError{Reason: "device-owner authentication is not supported on " + runtime.GOOS}
}

func (unsupportedAuthenticator) Evaluate(context.Context, string) error {
	return &UnavailableError{Reason: "device-owner authentication is not supported on " + runtime.GOOS}
}
