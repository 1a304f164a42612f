//go:build linux

package dialog

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// zenityPresenter shows the dialog with zenity --question.
type zenityPresenter struct{}

// NewPresenter returns the platform presenter.
func NewPresenter() Presenter {
	return &zenityPresenter{}
}

func (p *zenityPresenter) Present(ctx context.Context, prompt Prompt) (bool, error) {
	path, err := exec.LookPath("zenity")
	if err != nil {
		return false, ErrNotAvailable
	}
	cmd := exec.CommandContext(ctx, path, zenityArgs(prompt)...)
	err = cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return false, fmt.Errorf("zenity: %w", err)
	}
	code := 0
	if exitErr != nil {
		code = exitErr.ExitCode()
	}
	return zenityAccepted(code)
}
