package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mouse-blink/bodyscan/internal/adapter"
	"github.com/mouse-blink/bodyscan/internal/controller"
	"github.com/mouse-blink/bodyscan/internal/domain"
)

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a polling test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newTestRootCmd(t *testing.T, sub *cobra.Command, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "bodyscan.log")))

	return cmd, &out
}

func newTestApp(t *testing.T) *app {
	t.Helper()

	parts, err := adapter.LoadCatalog("")
	require.NoError(t, err)

	catalog, err := domain.NewCatalog(parts)
	require.NoError(t, err)

	return &app{cfg: adapter.DefaultConfig(), logger: zaptest.NewLogger(t), catalog: catalog}
}

func TestExecCmd_TraceOutput(t *testing.T) {
	cmd, out := newTestRootCmd(t, newExecCmd(), "exec", "--ticks", "2", "START_SCAN", "my knee", "zzz")

	require.NoError(t, cmd.Execute())

	want := strings.Join([]string{
		`#1 sweeping 💓 Full body scan in progress... position=32.0 direction=down`,
		`> "START_SCAN" -> sweep-started`,
		`#2 sweeping 💓 Full body scan in progress... position=33.0 direction=down`,
		`#3 sweeping 💓 Full body scan in progress... position=34.0 direction=down`,
		`#4 narrow-scan 🎯 Narrow scan: Knees part=KNEES`,
		`! success Narrow scan: Knees`,
		`> "my knee" -> narrow-scan`,
		`! error could not locate part: zzz. Try general scan.`,
		`> "zzz" -> unrecognized (could not locate part: zzz)`,
	}, "\n") + "\n"

	assert.Equal(t, want, out.String())
}

func TestExecCmd_ReadsStdin(t *testing.T) {
	cmd, out := newTestRootCmd(t, newExecCmd(), "exec", "--stdin", "FULL_BODY_GLOW")
	cmd.SetIn(strings.NewReader("full_body_glow\n\nSTOP_SCAN\n"))

	require.NoError(t, cmd.Execute())

	want := strings.Join([]string{
		`#1 outline-glow 💡 Full body outline pulsating...`,
		`> "FULL_BODY_GLOW" -> glow-toggled`,
		`#2 idle 💤 Scanner idle.`,
		`> "full_body_glow" -> glow-toggled`,
		`> "" -> ignored`,
		`> "STOP_SCAN" -> sweep-stopped`,
	}, "\n") + "\n"

	assert.Equal(t, want, out.String())
}

func TestExecCmd_SweepBouncesAtEnd(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bodyscan.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("scan:\n  start: 0\n  end: 2\n  step: 1\n"), 0o600))

	cmd, out := newTestRootCmd(t, newExecCmd(), "exec", "--config", configPath, "--ticks", "3", "START_SCAN")

	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "#3 sweeping 💓 Full body scan in progress... position=2.0 direction=up")
	assert.Contains(t, output, "#4 sweeping 💓 Full body scan in progress... position=1.0 direction=up")
}

func TestExecCmd_ClearFlag(t *testing.T) {
	cmd, out := newTestRootCmd(t, newExecCmd(), "exec", "--clear", "START_SCAN", "clear")

	require.NoError(t, cmd.Execute())

	want := strings.Join([]string{
		`#1 sweeping 💓 Full body scan in progress... position=32.0 direction=down`,
		`> "START_SCAN" -> sweep-started`,
		`#2 narrow-scan 🎯 Narrow scan: Ears part=EARS`,
		`! success Narrow scan: Ears`,
		`> "clear" -> narrow-scan`,
		`#3 idle 💤 Scanner idle.`,
		`> reset -> cleared`,
	}, "\n") + "\n"

	assert.Equal(t, want, out.String())
}

func TestExecCmd_NegativeTicks(t *testing.T) {
	cmd, _ := newTestRootCmd(t, newExecCmd(), "exec", "--ticks", "-1", "START_SCAN")

	require.Error(t, cmd.Execute())
}

func TestExecCmd_MissingConfig(t *testing.T) {
	cmd, _ := newTestRootCmd(t, newExecCmd(), "exec", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "START_SCAN")

	err := cmd.Execute()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPartsCmd_PrintsCatalog(t *testing.T) {
	cmd, out := newTestRootCmd(t, newPartsCmd(), "parts")

	require.NoError(t, cmd.Execute())

	output := out.String()
	for _, want := range []string{"HEAD", "Shoulders", "KNEES", "patella", "TOTAL PARTS 14"} {
		assert.Contains(t, output, want)
	}
}

func TestReadCommands(t *testing.T) {
	commands, err := readCommands(strings.NewReader("START_SCAN\r\nmy knee\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"START_SCAN\r", "my knee"}, commands)
}

func TestRunScanner_CommandFile(t *testing.T) {
	a := newTestApp(t)

	commandsFile := filepath.Join(t.TempDir(), "commands.txt")
	require.NoError(t, os.WriteFile(commandsFile, nil, 0o600))

	var out syncBuffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	ui := controller.NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- runScanner(ctx, a, ui, adapter.NewManualClock(time.Unix(0, 0)), commandsFile)
	}()

	file, err := os.OpenFile(commandsFile, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)

	_, err = file.WriteString("FULL_BODY_GLOW\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `> "FULL_BODY_GLOW" -> glow-toggled`)
	}, 5*time.Second, 10*time.Millisecond)

	assert.Contains(t, out.String(), "outline-glow")

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runScanner did not stop after cancel")
	}
}

func TestRunScanner_StopsWhenUICloses(t *testing.T) {
	a := newTestApp(t)

	cmd := &cobra.Command{}
	cmd.SetOut(&syncBuffer{})

	ui := controller.NewSimpleUI(cmd)

	errCh := make(chan error, 1)
	go func() {
		errCh <- runScanner(context.Background(), a, ui, adapter.NewManualClock(time.Unix(0, 0)), "")
	}()

	ui.Close()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runScanner did not stop after the UI closed")
	}
}
