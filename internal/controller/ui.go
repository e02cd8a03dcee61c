// Package controller provides output adapters for displaying slug line results.
package controller

import (
	m "github.com/mouse-blink/slugline/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeApply reports results as files are rewritten.
	ModeApply StartMode = iota
	// ModeCheck reports what would change without writing.
	ModeCheck
	// ModeList collects pending outcomes and renders them as one table.
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithApplyMode sets the UI to apply mode.
func WithApplyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeApply
	}
}

// WithCheckMode sets the UI to dry-run reporting mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithListMode sets the UI to table listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeApply}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI is the output sink the workflow reports to.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayNoFiles()
	DisplayResult(result m.ChangeResult)
	DisplayError(path m.Path, err error)
	DisplaySummary(changes int) error
}

func summaryLabel(mode StartMode) string {
	if mode == ModeApply {
		return "Number of changes"
	}

	return "Number of pending changes"
}
