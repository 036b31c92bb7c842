package model

// Outcome describes what a dispatched command did.
type Outcome int

// Available Outcome values.
const (
	OutcomeIgnored Outcome = iota
	OutcomeSweepStarted
	OutcomeSweepStopped
	OutcomeGlowToggled
	OutcomeNarrowScan
	OutcomeCleared
	OutcomeUnrecognized
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSweepStarted:
		return "sweep-started"
	case OutcomeSweepStopped:
		return "sweep-stopped"
	case OutcomeGlowToggled:
		return "glow-toggled"
	case OutcomeNarrowScan:
		return "narrow-scan"
	case OutcomeCleared:
		return "cleared"
	case OutcomeUnrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Result is returned for every command submitted to a session.
type Result struct {
	ID      string // correlation id
	Command string
	Outcome Outcome
	State   RenderState
}

// NoticeLevel grades how a Notice is shown.
type NoticeLevel string

// Available NoticeLevel values.
const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a short user-facing message.
type Notice struct {
	Level   NoticeLevel
	Message string
}
