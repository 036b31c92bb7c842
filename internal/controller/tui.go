package controller

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/bodyscan/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI reading keys from stdin.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start launches the interactive scanner view in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	return t.startWithModel(newScannerModel(cfg.submit, cfg.reset, cfg.parts))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}
	if t.input == nil {
		opts = append(opts, tea.WithInput(nil))
	} else {
		opts = append(opts, tea.WithInput(t.input))
	}

	program := tea.NewProgram(model, opts...)
	done := make(chan struct{})

	t.program = program
	t.done = done
	t.started = true

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return nil
}

// send delivers msg to the running program. It is a no-op before Start.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// Close quits the program and waits for it to restore the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// Render forwards a snapshot to the view.
func (t *TUI) Render(state m.RenderState) {
	t.send(renderMsg{state: state})
}

// Notify forwards a notice to the view.
func (t *TUI) Notify(notice m.Notice) {
	t.send(noticeMsg{notice: notice})
}

// DisplayResult shows the outcome of a command that did not come from the
// prompt, such as one read from a command file.
func (t *TUI) DisplayResult(result m.Result, err error) {
	t.send(resultMsg{result: result, err: err})
}

// DisplayParts prints the catalog. A catalog listing does not need the
// interactive view, so it is written directly.
func (t *TUI) DisplayParts(parts []m.BodyPart) error {
	_, err := fmt.Fprint(t.output, renderPartsList(parts))
	return err
}
