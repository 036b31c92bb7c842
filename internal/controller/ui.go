// Package controller provides the front ends that display the body scanner.
package controller

import (
	m "github.com/mouse-blink/bodyscan/internal/model"
)

// SubmitFunc sends a command typed by the user to the scanner session.
type SubmitFunc func(command string) (m.Result, error)

// ClearFunc returns the scanner to idle.
type ClearFunc func() (m.Result, error)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeInteractive StartMode = iota
	ModeTrace
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode       StartMode
	submit     SubmitFunc
	reset      ClearFunc
	parts      []m.BodyPart
	traceTicks bool
}

// WithInteractiveMode shows the live scanner and a command prompt.
func WithInteractiveMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInteractive
	}
}

// WithTraceMode prints one line per scanner change.
func WithTraceMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeTrace
	}
}

// WithSubmitter sets where prompt commands go.
func WithSubmitter(submit SubmitFunc) StartOption {
	return func(c *StartConfig) {
		c.submit = submit
	}
}

// WithClearer sets what the reset key calls.
func WithClearer(reset ClearFunc) StartOption {
	return func(c *StartConfig) {
		c.reset = reset
	}
}

// WithParts gives the UI the catalog so it can describe narrow scan targets.
func WithParts(parts []m.BodyPart) StartOption {
	return func(c *StartConfig) {
		c.parts = parts
	}
}

// WithTraceTicks makes trace output include every sweep tick, not only
// effect changes.
func WithTraceTicks() StartOption {
	return func(c *StartConfig) {
		c.traceTicks = true
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying the scanner.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	Render(state m.RenderState)
	Notify(notice m.Notice)
	DisplayResult(result m.Result, err error)
	DisplayParts(parts []m.BodyPart) error
}
