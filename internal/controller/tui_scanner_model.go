package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/bodyscan/internal/model"
)

const (
	maxLogEntries    = 6
	pulsePeriod      = 600 * time.Millisecond
	minProgressWidth = 16
)

type keyMap struct {
	Submit key.Binding
	Start  key.Binding
	Stop   key.Binding
	Glow   key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Start, k.Stop, k.Glow, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Start:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "scan")),
		Stop:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "stop")),
		Glow:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "glow")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

type logEntry struct {
	level m.NoticeLevel
	text  string
}

// scannerModel is the interactive scanner view: body diagram, status panel,
// recent notices and a command prompt.
type scannerModel struct {
	width    int
	height   int
	state    m.RenderState
	log      []logEntry
	input    textinput.Model
	keys     keyMap
	help     help.Model
	progress progress.Model
	submit   SubmitFunc
	reset    ClearFunc
	parts    map[string]m.BodyPart
	pulse    bool
	quitting bool
}

func newScannerModel(submit SubmitFunc, reset ClearFunc, parts []m.BodyPart) scannerModel {
	input := textinput.New()
	input.Placeholder = "Describe a symptom or type START_SCAN, STOP_SCAN, FULL_BODY_GLOW…"
	input.Prompt = "❯ "
	input.CharLimit = 200
	input.Focus()

	byID := make(map[string]m.BodyPart, len(parts))
	for _, part := range parts {
		byID[part.ID] = part
	}

	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(24),
		progress.WithoutPercentage(),
	)

	return scannerModel{
		state:    m.RenderState{Effect: m.EffectIdle, Status: "Scanner idle.", Icon: "💤"},
		input:    input,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: prog,
		submit:   submit,
		reset:    reset,
		parts:    byID,
	}
}

func pulseTick() tea.Cmd {
	return tea.Tick(pulsePeriod, func(time.Time) tea.Msg {
		return pulseMsg{}
	})
}

func (sm scannerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, pulseTick())
}

func (sm scannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.input.Width = max(msg.Width-6, 10)
		sm.help.Width = msg.Width

		sm.progress.Width = msg.Width/4 - 4
		if sm.progress.Width < minProgressWidth {
			sm.progress.Width = minProgressWidth
		}

		return sm, nil

	case renderMsg:
		sm.state = msg.state
		return sm, nil

	case noticeMsg:
		sm = sm.appendLog(msg.notice.Level, msg.notice.Message)
		return sm, nil

	case resultMsg:
		return sm.handleResult(msg), nil

	case pulseMsg:
		sm.pulse = !sm.pulse
		return sm, pulseTick()

	case tea.KeyMsg:
		return sm.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	sm.input, cmd = sm.input.Update(msg)

	return sm, cmd
}

func (sm scannerModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, sm.keys.Quit):
		sm.quitting = true
		return sm, tea.Quit

	case key.Matches(msg, sm.keys.Submit):
		command := sm.input.Value()
		sm.input.Reset()

		return sm, sm.submitCmd(command)

	case key.Matches(msg, sm.keys.Start):
		return sm, sm.submitCmd("START_SCAN")

	case key.Matches(msg, sm.keys.Stop):
		return sm, sm.submitCmd("STOP_SCAN")

	case key.Matches(msg, sm.keys.Glow):
		return sm, sm.submitCmd("FULL_BODY_GLOW")

	case key.Matches(msg, sm.keys.Clear):
		return sm, sm.clearCmd()
	}

	var cmd tea.Cmd
	sm.input, cmd = sm.input.Update(msg)

	return sm, cmd
}

// submitCmd runs the submission off the Bubble Tea loop; the session replies
// with a resultMsg.
func (sm scannerModel) submitCmd(command string) tea.Cmd {
	if sm.submit == nil {
		return nil
	}

	submit := sm.submit

	return func() tea.Msg {
		result, err := submit(command)
		return resultMsg{result: result, err: err}
	}
}

// clearCmd resets the scanner off the Bubble Tea loop.
func (sm scannerModel) clearCmd() tea.Cmd {
	if sm.reset == nil {
		return nil
	}

	reset := sm.reset

	return func() tea.Msg {
		result, err := reset()
		return resultMsg{result: result, err: err}
	}
}

func (sm scannerModel) handleResult(msg resultMsg) scannerModel {
	if msg.result.Outcome == m.OutcomeIgnored {
		return sm
	}

	// Render messages can arrive after the result; never move backwards.
	if msg.result.State.Sequence > sm.state.Sequence {
		sm.state = msg.result.State
	}

	if msg.err != nil {
		return sm.appendLog(m.NoticeWarning, fmt.Sprintf("%q: %v", msg.result.Command, msg.err))
	}

	if msg.result.Outcome == m.OutcomeCleared {
		return sm.appendLog(m.NoticeInfo, "reset → "+msg.result.Outcome.String())
	}

	return sm.appendLog(m.NoticeInfo, fmt.Sprintf("%q → %s", msg.result.Command, msg.result.Outcome))
}

func (sm scannerModel) appendLog(level m.NoticeLevel, text string) scannerModel {
	log := append(append([]logEntry(nil), sm.log...), logEntry{level: level, text: text})
	if len(log) > maxLogEntries {
		log = log[len(log)-maxLogEntries:]
	}

	sm.log = log

	return sm
}

func (sm scannerModel) View() string {
	if sm.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	title := titleStyle.Render("🩺 Body Scanner")

	diagramBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(0, 1).
		Render(renderDiagram(sm.state, sm.pulse))

	body := lipgloss.JoinHorizontal(lipgloss.Top, diagramBox, sm.renderPanel())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		sm.renderLog(),
		"  "+sm.input.View(),
		"  "+sm.help.View(sm.keys),
	)
}

func (sm scannerModel) renderPanel() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	iconStyle := lipgloss.NewStyle()

	if sm.state.Mood == m.MoodPulse && sm.pulse {
		iconStyle = iconStyle.Bold(true).Foreground(lipgloss.Color("205"))
	}

	lines := []string{
		iconStyle.Render(sm.state.Icon) + " " + valueStyle.Render(sm.state.Status),
		"",
		labelStyle.Render("effect    ") + valueStyle.Render(sm.state.Effect.String()),
	}

	switch sm.state.Effect {
	case m.EffectSweeping:
		lines = append(lines,
			labelStyle.Render("position  ")+valueStyle.Render(fmt.Sprintf("%.1f", sm.state.Position)),
			labelStyle.Render("direction ")+valueStyle.Render(sm.state.Direction.String()),
			sm.progress.ViewAs(sm.state.Progress),
		)
	case m.EffectNarrowScan:
		lines = append(lines, labelStyle.Render("part      ")+valueStyle.Render(sm.state.PartLabel))

		if part, ok := sm.parts[sm.state.PartID]; ok && part.Description != "" {
			desc := lipgloss.NewStyle().Width(36).Foreground(lipgloss.Color("252")).Render(part.Description)
			lines = append(lines, "", desc)
		}
	case m.EffectIdle, m.EffectOutlineGlow:
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func (sm scannerModel) renderLog() string {
	styles := map[m.NoticeLevel]lipgloss.Style{
		m.NoticeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		m.NoticeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		m.NoticeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		m.NoticeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	lines := make([]string, 0, len(sm.log))
	for _, entry := range sm.log {
		lines = append(lines, "  "+styles[entry.level].Render(entry.text))
	}

	return strings.Join(lines, "\n")
}
