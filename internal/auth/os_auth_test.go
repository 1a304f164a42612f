package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	canErr    error
	evalErr   error
	evalCalls int
	gotReason string
}

func (f *fakeAuthenticator) CanEvaluate() error {
	return f.canErr
}

func (f *fakeAuthenticator) Evaluate(ctx context.Context, reason string) error {
	f.evalCalls++
	f.gotReason = reason
	return f.evalErr
}

func TestAuthenticateSuccess(t *testing.T) {
	fake := &fakeAuthenticator{}
	svc := NewServiceWith(fake)

	require.NoError(t, svc.Authenticate(context.Background(), "Reveal secret"))
	assert.Equal(t, 1, fake.evalCalls)
	assert.Equal(t, "Reveal secret", fake.gotReason)
}

func TestAuthenticateUnavailableSkipsPrompt(t *testing.T) {
	fake := &fakeAuthenticator{canErr: &UnavailableError{Reason: "Biometry is not enrolled."}}
	svc := NewServiceWith(fake)

	err := svc.Authenticate(context.Background(), "Reveal secret")

	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "Biometry is not enrolled.", unavailable.DisplayReason())
	assert.Equal(t, 0, fake.evalCalls, "must not prompt when policy cannot be evaluated")
}

func TestAuthenticateUnavailablePlainError(t *testing.T) {
	svc := NewServiceWith(&fakeAuthenticator{canErr: errors.New("no passcode set")})

	err := svc.Authenticate(context.Background(), "x")

	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "no passcode set", unavailable.Reason)
}

func TestAuthenticateFailed(t *testing.T) {
	svc := NewServiceWith(&fakeAuthenticator{evalErr: &FailedError{Reason: "Canceled by user."}})

	err := svc.Authenticate(context.Background(), "x")

	var failed *FailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, "Canceled by user.", failed.Reason)
}

func TestAuthenticateWrapsOtherErrors(t *testing.T) {
	cause := errors.New("boom")
	svc := NewServiceWith(&fakeAuthenticator{evalErr: cause})

	err := svc.Authenticate(context.Background(), "x")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestAuthenticateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := NewServiceWith(&fakeAuthenticator{evalErr: errors.New("killed")})

	err := svc.Authenticate(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "authentication not available: Unknown error", (&UnavailableError{}).Error())
	assert.Equal(t, "authentication not available: no sensor", (&UnavailableError{Reason: "no sensor"}).Error())
	assert.Equal(t, "authentication failed", (&FailedError{}).Error())
	assert.Equal(t, "authentication failed: wrong password", (&FailedError{Reason: "wrong password"}).Error())
}

func TestPlatformServiceConstructs(t *testing.T) {
	svc := NewService()
	require.NotNil(t, svc)
	require.NotNil(t, svc.authenticator)
}
