// Package dialog presents a modal two-button confirmation dialog through the
// platform's native dialog service.
package dialog

import (
	"context"
	"errors"
)

// Default dialog text.
const (
	DefaultTitle        = "Confirmation Required"
	DefaultAcceptLabel  = "Accept"
	DefaultDeclineLabel = "Decline"
)

// ErrNotAvailable is returned when no dialog service exists on this platform.
var ErrNotAvailable = errors.New("dialog: not available on this platform")

// Prompt describes one dialog. AcceptLabel is the first, default button.
type Prompt struct {
	Title        string
	Message      string
	AcceptLabel  string
	DeclineLabel string
	IconPath     string // empty means no icon
}

// NewPrompt returns a prompt with the default title and button labels.
func NewPrompt(message, iconPath string) Prompt {
	return Prompt{
		Title:        DefaultTitle,
		Message:      message,
		AcceptLabel:  DefaultAcceptLabel,
		DeclineLabel: DefaultDeclineLabel,
		IconPath:     iconPath,
	}
}

// Presenter shows a Prompt above all other windows and blocks until the user
// answers. accepted is true only when the accept button was chosen; a
// decline or any other dismissal is (false, nil).
type Presenter interface {
	Present(ctx context.Context, p Prompt) (accepted bool, err error)
}
