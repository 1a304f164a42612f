//go:build darwin

package dialog

import (
	"context"
	"fmt"

	"github.com/peternagy/confirm/internal/osascript"
)

// macOSPresenter shows the dialog with AppleScript's display dialog, run
// inside System Events so it is activated above every other application.
type macOSPresenter struct{}

// NewPresenter returns the platform presenter.
func NewPresenter() Presenter {
	return &macOSPresenter{}
}

// Present runs osascript and waits for it; the dialog window lives only as
// long as the osascript process.
func (p *macOSPresenter) Present(ctx context.Context, prompt Prompt) (bool, error) {
	if !osascript.Available() {
		return false, ErrNotAvailable
	}
	button, err := osascript.Run(ctx, dialogScript, scriptArgs(prompt)...)
	if err != nil {
		if osascript.IsCanceled(err) {
			return false, nil
		}
		return false, fmt.Errorf("display dialog: %w", err)
	}
	return button == prompt.AcceptLabel, nil
}
