// Package domain implements the body scanner: the part catalog, the effect
// state machine, the command dispatcher and the session loop that drives them.
package domain

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mouse-blink/bodyscan/internal/adapter"
	m "github.com/mouse-blink/bodyscan/internal/model"
)

// Status texts and icons shown for each effect.
const (
	statusIdle     = "Scanner idle."
	statusSweeping = "Full body scan in progress..."
	statusGlow     = "Full body outline pulsating..."
	statusNarrow   = "Narrow scan: %s"

	iconIdle     = "💤"
	iconSweeping = "💓"
	iconGlow     = "💡"
	iconNarrow   = "🎯"
)

// Renderer paints scanner snapshots.
type Renderer interface {
	Render(state m.RenderState)
}

// Effects is the set of operations the dispatcher drives.
type Effects interface {
	StartSweep()
	StopSweep()
	ToggleGlow()
	StartNarrowScan(part m.BodyPart)
}

// Scanner is the effect state machine. It owns the current state and the
// sweep ticker; a ticker exists only while sweeping.
//
// Scanner is not safe for concurrent use. It must be driven from a single
// goroutine, usually a Session.
type Scanner struct {
	cfg      adapter.ScanConfig
	clock    adapter.Clock
	renderer Renderer
	logger   *zap.Logger

	state  m.ScanState
	ticker adapter.Ticker
	seq    uint64
}

// NewScanner creates an idle scanner. renderer and logger may be nil.
func NewScanner(cfg adapter.ScanConfig, clock adapter.Clock, renderer Renderer, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scanner{
		cfg:      cfg,
		clock:    clock,
		renderer: renderer,
		logger:   logger,
		state:    m.Idle{},
	}
}

// State returns the current state.
func (s *Scanner) State() m.ScanState {
	return s.state
}

// StartSweep restarts the scan line from the start bound, moving down.
func (s *Scanner) StartSweep() {
	s.stopTicker()
	s.transition(m.Sweeping{Position: s.cfg.Start, Direction: m.DirectionDown})
	s.ticker = s.clock.NewTicker(s.cfg.TickPeriod)
}

// StopSweep ends a running sweep. Other effects are left alone.
func (s *Scanner) StopSweep() {
	s.stopTicker()

	if _, ok := s.state.(m.Sweeping); ok {
		s.transition(m.Idle{})
	}
}

// ToggleGlow switches the outline glow off when it is on, and on otherwise.
func (s *Scanner) ToggleGlow() {
	s.stopTicker()

	if _, ok := s.state.(m.OutlineGlow); ok {
		s.transition(m.Idle{})
		return
	}

	s.transition(m.OutlineGlow{})
}

// StartNarrowScan highlights part, replacing any other effect.
func (s *Scanner) StartNarrowScan(part m.BodyPart) {
	s.stopTicker()
	s.transition(m.NarrowScan{Part: part})
}

// ClearAll returns to idle from any state.
func (s *Scanner) ClearAll() {
	s.stopTicker()

	if _, ok := s.state.(m.Idle); !ok {
		s.transition(m.Idle{})
	}
}

// Close releases the ticker when the hosting view goes away. No render is
// issued.
func (s *Scanner) Close() {
	s.stopTicker()
	s.state = m.Idle{}
}

// Ticks returns the channel of the running sweep ticker, or nil when not
// sweeping. Receiving from a nil channel blocks forever, so a select loop
// never sees ticks from a cancelled sweep.
func (s *Scanner) Ticks() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}

	return s.ticker.C()
}

// Tick advances the scan line by one step. It does nothing unless sweeping.
func (s *Scanner) Tick() {
	sweep, ok := s.state.(m.Sweeping)
	if !ok {
		return
	}

	switch sweep.Direction {
	case m.DirectionDown:
		sweep.Position += s.cfg.Step
		if sweep.Position >= s.cfg.End {
			sweep.Position = s.cfg.End
			sweep.Direction = m.DirectionUp
		}
	case m.DirectionUp:
		sweep.Position -= s.cfg.Step
		if sweep.Position <= s.cfg.Start {
			sweep.Position = s.cfg.Start
			sweep.Direction = m.DirectionDown
		}
	}

	s.state = sweep
	s.seq++
	s.render()
}

// Snapshot describes the current state for rendering. It has no side effects.
func (s *Scanner) Snapshot() m.RenderState {
	return snapshotOf(s.state, s.seq, s.cfg)
}

func (s *Scanner) transition(next m.ScanState) {
	s.logger.Debug("scanner transition",
		zap.Stringer("from", s.state.Effect()),
		zap.Stringer("to", next.Effect()))

	s.state = next
	s.seq++
	s.render()
}

func (s *Scanner) stopTicker() {
	if s.ticker == nil {
		return
	}

	s.ticker.Stop()
	s.ticker = nil
}

func (s *Scanner) render() {
	if s.renderer != nil {
		s.renderer.Render(s.Snapshot())
	}
}

func snapshotOf(state m.ScanState, seq uint64, cfg adapter.ScanConfig) m.RenderState {
	rs := m.RenderState{Sequence: seq, Effect: state.Effect()}

	switch st := state.(type) {
	case m.Sweeping:
		rs.Status = statusSweeping
		rs.Icon = iconSweeping
		rs.Position = st.Position
		rs.Direction = st.Direction
		rs.Progress = (st.Position - cfg.Start) / (cfg.End - cfg.Start)
	case m.OutlineGlow:
		rs.Status = statusGlow
		rs.Icon = iconGlow
		rs.Mood = m.MoodPulse
	case m.NarrowScan:
		rs.Status = fmt.Sprintf(statusNarrow, st.Part.Label)
		rs.Icon = iconNarrow
		rs.Mood = m.MoodPulse
		rs.PartID = st.Part.ID
		rs.PartLabel = st.Part.Label
		rs.PartPosition = st.Part.Position
	default:
		rs.Status = statusIdle
		rs.Icon = iconIdle
	}

	return rs
}
