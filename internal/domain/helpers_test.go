package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/bodyscan/internal/adapter"
	m "github.com/mouse-blink/bodyscan/internal/model"
)

type recordingRenderer struct {
	states []m.RenderState
}

func (r *recordingRenderer) Render(state m.RenderState) {
	r.states = append(r.states, state)
}

func (r *recordingRenderer) last() m.RenderState {
	return r.states[len(r.states)-1]
}

type recordingNotifier struct {
	notices []m.Notice
}

func (n *recordingNotifier) Notify(notice m.Notice) {
	n.notices = append(n.notices, notice)
}

func testScanConfig() adapter.ScanConfig {
	return adapter.ScanConfig{Start: 32, End: 165, Step: 1, TickPeriod: 30 * time.Millisecond}
}

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()

	parts, err := adapter.LoadCatalog("")
	require.NoError(t, err)

	catalog, err := NewCatalog(parts)
	require.NoError(t, err)

	return catalog
}

func newTestScanner(cfg adapter.ScanConfig) (*Scanner, *adapter.ManualClock, *recordingRenderer) {
	clock := adapter.NewManualClock(time.Unix(0, 0))
	renderer := &recordingRenderer{}

	return NewScanner(cfg, clock, renderer, nil), clock, renderer
}
