// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// GroupRequested asks the app to group the folder at Root.
type GroupRequested struct {
	Root string
}

// GroupCompleted carries a finished report, or the error that stopped it.
type GroupCompleted struct {
	Report *domain.Report
	Err    error
}

// ResetRequested clears the results pane.
type ResetRequested struct{}
