// Package core holds the confirmation agent: one request, one decision.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/peternagy/confirm/internal/auth"
	"github.com/peternagy/confirm/internal/clifmt"
	"github.com/peternagy/confirm/internal/debug"
	"github.com/peternagy/confirm/internal/dialog"
	"github.com/peternagy/confirm/internal/request"
)

// Agent decides a single Request, either with a dialog or with device-owner
// authentication. It is single-use: Decide shows its UI at most once.
type Agent struct {
	request   request.Request
	presenter dialog.Presenter
	auth      *auth.Service
	diag      io.Writer
	getenv    clifmt.Getenv
	format    clifmt.Formatter

	once   sync.Once
	mu     sync.Mutex
	state  State
	result bool
}

// Option configures an Agent.
type Option func(*Agent)

// WithPresenter replaces the platform dialog presenter.
func WithPresenter(p dialog.Presenter) Option {
	return func(a *Agent) { a.presenter = p }
}

// WithAuthenticator replaces the platform authenticator.
func WithAuthenticator(authenticator auth.Authenticator) Option {
	return func(a *Agent) { a.auth = auth.NewServiceWith(authenticator) }
}

// WithDiagnostics sets where user-facing diagnostics are written (stderr by default).
func WithDiagnostics(w io.Writer) Option {
	return func(a *Agent) { a.diag = w }
}

// WithEnv sets the environment lookup used to decide on colored diagnostics.
func WithEnv(getenv func(key string) string) Option {
	return func(a *Agent) { a.getenv = getenv }
}

// New creates an agent for req. req.Message must be non-empty.
func New(req request.Request, opts ...Option) *Agent {
	a := &Agent{
		request: req,
		diag:    os.Stderr,
		state:   StateStart,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.presenter == nil {
		a.presenter = dialog.NewPresenter()
	}
	if a.auth == nil {
		a.auth = auth.NewService()
	}
	a.format = clifmt.For(a.diag, a.getenv)
	return a
}

// Decide shows the dialog or runs authentication and reports whether the
// user affirmed. Later calls return the first answer without prompting.
func (a *Agent) Decide(ctx context.Context) bool {
	a.once.Do(func() {
		var ok bool
		if a.request.RequireAuth {
			a.setState(StateAuthenticating)
			ok = a.authenticate(ctx)
		} else {
			a.setState(StatePresentingDialog)
			ok = a.present(ctx)
		}
		a.result = ok
		if ok {
			a.setState(StateAffirmed)
		} else {
			a.setState(StateDeclined)
		}
	})
	return a.result
}

// State reports where the agent is in its lifecycle.
func (a *Agent) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Agent) setState(s State) {
	a.mu.Lock()
	prev := a.state
	a.state = s
	a.mu.Unlock()
	debug.Log(debug.CategoryAgent, "agent state changed", map[string]any{"from": prev.String(), "to": s.String()})
}

func (a *Agent) authenticate(ctx context.Context) bool {
	err := a.auth.Authenticate(ctx, a.request.Message)
	if err == nil {
		debug.LogAuth("authentication succeeded", nil)
		return true
	}

	var unavailable *auth.UnavailableError
	if errors.As(err, &unavailable) {
		fmt.Fprintln(a.diag, a.format.Warn("Authentication not available: "+unavailable.DisplayReason()))
		return false
	}
	// Failures are reported only when the platform says why; a bare
	// failure or a cancelled context stays quiet.
	var failed *auth.FailedError
	if errors.As(err, &failed) && failed.Reason != "" {
		fmt.Fprintln(a.diag, a.format.Warn("Authentication failed: "+failed.Reason))
	}
	debug.LogAuth("authentication did not succeed", map[string]any{"error": err.Error()})
	return false
}

func (a *Agent) present(ctx context.Context) bool {
	icon := dialog.ResolveIcon(a.request.IconPath)
	if icon == "" && a.request.IconPath != "" {
		debug.LogDialog("icon ignored", map[string]any{"path": a.request.IconPath})
	}

	prompt := dialog.NewPrompt(a.request.Message, icon)
	accepted, err := a.presenter.Present(ctx, prompt)
	if err != nil && iconMayHaveFailed(ctx, prompt, err) {
		// The dialog was never shown; an icon that fails to load must not
		// decide the answer.
		debug.LogDialog("dialog failed with icon, retrying without", map[string]any{"error": err.Error()})
		prompt.IconPath = ""
		accepted, err = a.presenter.Present(ctx, prompt)
	}
	if err != nil {
		debug.LogDialog("dialog failed", map[string]any{"error": err.Error()})
		return false
	}
	debug.LogDialog("dialog answered", map[string]any{"accepted": accepted})
	return accepted
}

func iconMayHaveFailed(ctx context.Context, prompt dialog.Prompt, err error) bool {
	if prompt.IconPath == "" || ctx.Err() != nil {
		return false
	}
	return !errors.Is(err, dialog.ErrNotAvailable)
}
