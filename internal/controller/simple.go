package controller

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/bodyscan/internal/model"
)

// SimpleUI implements UI by printing trace lines to the command output.
type SimpleUI struct {
	cmd *cobra.Command

	mu         sync.Mutex
	traceTicks bool
	last       m.RenderState
	done       chan struct{}
	closeOnce  sync.Once
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, done: make(chan struct{})}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	s.mu.Lock()
	s.traceTicks = cfg.traceTicks
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI and releases Wait.
func (s *SimpleUI) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Wait blocks until Close is called.
func (s *SimpleUI) Wait() {
	<-s.done
}

// Render prints a trace line. Without WithTraceTicks, sweep steps that keep
// moving the same way are skipped; bounces and restarts are still printed.
func (s *SimpleUI) Render(state m.RenderState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skip := !s.traceTicks && isSweepStep(s.last, state)
	s.last = state

	if !skip {
		s.printf("%s\n", formatTrace(state))
	}
}

// isSweepStep reports whether next continues the sweep in prev without a
// change of direction.
func isSweepStep(prev, next m.RenderState) bool {
	if prev.Effect != m.EffectSweeping || next.Effect != m.EffectSweeping || prev.Direction != next.Direction {
		return false
	}

	if next.Direction == m.DirectionDown {
		return next.Position > prev.Position
	}

	return next.Position < prev.Position
}

// Notify prints a notice line.
func (s *SimpleUI) Notify(notice m.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("! %s %s\n", notice.Level, notice.Message)
}

// DisplayResult prints the outcome of a command.
func (s *SimpleUI) DisplayResult(result m.Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.printf("> %q -> %s (%v)\n", result.Command, result.Outcome, err)
		return
	}

	if result.Outcome == m.OutcomeCleared {
		s.printf("> reset -> %s\n", result.Outcome)
		return
	}

	s.printf("> %q -> %s\n", result.Command, result.Outcome)
}

// DisplayParts prints the catalog as a table.
func (s *SimpleUI) DisplayParts(parts []m.BodyPart) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Label", "Position", "Keywords"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, part := range parts {
		table.Append([]string{
			part.ID,
			part.Label,
			fmt.Sprintf("%g%%", part.Position),
			strings.Join(part.Keywords, ", "),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Parts %d", len(parts)), "", "", ""})
	table.Render()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// formatTrace renders one state as a single line.
func formatTrace(state m.RenderState) string {
	line := fmt.Sprintf("#%d %s %s %s", state.Sequence, state.Effect, state.Icon, state.Status)

	switch state.Effect {
	case m.EffectSweeping:
		line += fmt.Sprintf(" position=%.1f direction=%s", state.Position, state.Direction)
	case m.EffectNarrowScan:
		line += fmt.Sprintf(" part=%s", state.PartID)
	case m.EffectIdle, m.EffectOutlineGlow:
	}

	return line
}
