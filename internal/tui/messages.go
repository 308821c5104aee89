package tui

import "github.com/mmcdole/gallery/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e ErrMsg) Unwrap() error {
	return e.Err
}

// PageLoadedMsg signals that a page arrived and the coordinator has
// already reconciled the selection against it
type PageLoadedMsg struct {
	Page domain.Page
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
