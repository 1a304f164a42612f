//go:build !darwin && !linux

package dialog

import "context"

type unsupportedPresenter struct{}

// NewPresenter returns the platform presenter.
func NewPresenter() Presenter {
	return unsupportedPresenter{}
}

func (unsupportedPresenter) Present(context.Context, Prompt) (bool, error) {
	return false, ErrNotAvailable
}
