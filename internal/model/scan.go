// Package model defines the data structures shared by the body scanner.
package model

// Effect identifies which visual effect is active.
type Effect int

// Available Effect values.
const (
	EffectIdle Effect = iota
	EffectSweeping
	EffectOutlineGlow
	EffectNarrowScan
)

func (e Effect) String() string {
	switch e {
	case EffectIdle:
		return "idle"
	case EffectSweeping:
		return "sweeping"
	case EffectOutlineGlow:
		return "outline-glow"
	case EffectNarrowScan:
		return "narrow-scan"
	default:
		return "unknown"
	}
}

// Direction is the travel direction of the scan line.
type Direction int

// Available Direction values. Down moves from the start bound towards the end bound.
const (
	DirectionDown Direction = iota
	DirectionUp
)

func (d Direction) String() string {
	if d == DirectionUp {
		return "up"
	}

	return "down"
}

// ScanState is the scanner state. Exactly one of Idle, Sweeping, OutlineGlow
// or NarrowScan implements it at a time.
type ScanState interface {
	Effect() Effect
	scanState()
}

// Idle means no effect is rendered.
type Idle struct{}

// Sweeping is the moving scan line.
type Sweeping struct {
	Position  float64
	Direction Direction
}

// OutlineGlow is the pulsating body outline.
type OutlineGlow struct{}

// NarrowScan highlights a single body part.
type NarrowScan struct {
	Part BodyPart
}

// Effect implements ScanState.
func (Idle) Effect() Effect { return EffectIdle }

// Effect implements ScanState.
func (Sweeping) Effect() Effect { return EffectSweeping }

// Effect implements ScanState.
func (OutlineGlow) Effect() Effect { return EffectOutlineGlow }

// Effect implements ScanState.
func (NarrowScan) Effect() Effect { return EffectNarrowScan }

func (Idle) scanState()        {}
func (Sweeping) scanState()    {}
func (OutlineGlow) scanState() {}
func (NarrowScan) scanState()  {}
