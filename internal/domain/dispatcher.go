package domain

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "github.com/mouse-blink/bodyscan/internal/model"
)

// Control tokens understood by the dispatcher. They take precedence over
// body part names; any other text is looked up in the catalog.
const (
	TokenStartScan    = "START_SCAN"
	TokenStopScan     = "STOP_SCAN"
	TokenFullBodyGlow = "FULL_BODY_GLOW"

	idleCommand = "idle"
)

// Notifier receives user-facing notices.
type Notifier interface {
	Notify(notice m.Notice)
}

// Dispatcher turns command strings into scanner operations.
type Dispatcher struct {
	effects  Effects
	catalog  *Catalog
	notifier Notifier
	logger   *zap.Logger
}

// NewDispatcher creates a Dispatcher. notifier and logger may be nil.
func NewDispatcher(effects Effects, catalog *Catalog, notifier Notifier, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Dispatcher{
		effects:  effects,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute applies one command. Empty and "idle" commands are ignored without
// error. A command that is neither a control token nor a known part returns
// an *UnrecognizedCommandError and leaves the scanner untouched.
func (d *Dispatcher) Execute(command string) (m.Outcome, error) {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" || strings.EqualFold(trimmed, idleCommand) {
		d.logger.Debug("scanner command ignored", zap.String("command", command))
		return m.OutcomeIgnored, nil
	}

	d.logger.Info("executing scanner command", zap.String("command", command))

	switch cases.Upper(language.Und).String(trimmed) {
	case TokenStartScan:
		d.effects.StartSweep()
		return m.OutcomeSweepStarted, nil
	case TokenStopScan:
		d.effects.StopSweep()
		return m.OutcomeSweepStopped, nil
	case TokenFullBodyGlow:
		d.effects.ToggleGlow()
		return m.OutcomeGlowToggled, nil
	}

	part, ok := d.catalog.FindByText(command)
	if !ok {
		err := &UnrecognizedCommandError{Command: command}
		d.logger.Warn("body part not found", zap.String("command", command))
		d.notify(m.NoticeError, err.Error()+". Try general scan.")

		return m.OutcomeUnrecognized, err
	}

	d.effects.StartNarrowScan(part)
	d.notify(m.NoticeSuccess, "Narrow scan: "+part.Label)

	return m.OutcomeNarrowScan, nil
}

func (d *Dispatcher) notify(level m.NoticeLevel, message string) {
	if d.notifier != nil {
		d.notifier.Notify(m.Notice{Level: level, Message: message})
	}
}
