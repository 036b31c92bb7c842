package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/bodyscan/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func newHeadlessTUI(buf *bytes.Buffer) *TUI {
	tui := NewTUI(buf)
	tui.input = nil

	return tui
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := newHeadlessTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// second start is a no-op
	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("second startWithModel error = %v", err)
	}

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}

	if err := tui.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
}

func TestTUI_ForwardingAfterQuitDoesNotBlock(t *testing.T) {
	var buf bytes.Buffer
	tui := newHeadlessTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	tui.Wait()

	done := make(chan struct{})
	go func() {
		tui.Render(m.RenderState{Sequence: 1, Effect: m.EffectOutlineGlow})
		tui.Notify(m.Notice{Level: m.NoticeInfo, Message: "hi"})
		tui.DisplayResult(m.Result{Command: "x"}, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("forwarding blocked after the program exited")
	}
}

func TestTUI_BeforeStart_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := newHeadlessTUI(&buf)

	// send, Wait and Close before start are no-ops
	tui.Render(m.RenderState{})
	tui.Wait()
	tui.Close()
}

func TestTUI_DisplayParts(t *testing.T) {
	var buf bytes.Buffer
	tui := newHeadlessTUI(&buf)

	err := tui.DisplayParts([]m.BodyPart{
		{ID: "KNEES", Label: "Knees", Keywords: []string{"knee", "patella"}},
	})
	if err != nil {
		t.Fatalf("DisplayParts() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Knees", "KNEES", "knee, patella"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}
