package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"

	"github.com/mouse-blink/bodyscan/internal/adapter"
	"github.com/mouse-blink/bodyscan/internal/controller"
	"github.com/mouse-blink/bodyscan/internal/domain"
	m "github.com/mouse-blink/bodyscan/internal/model"
)

var runCommandsFileFlag string
var runAutoStartFlag time.Duration

const runLongDescription = `Start the scanner.

On a terminal the scanner opens a full screen view with a command prompt.
Otherwise every state change is printed as a trace line until interrupted.

With --commands-file, lines appended to the file are dispatched as commands,
so another process can drive the scanner.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the scanner",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			useTTY := controller.IsTTY(cmd.OutOrStdout())

			a, err := setup(useTTY)
			if err != nil {
				return err
			}
			defer a.close()

			if cmd.Flags().Changed("auto-start") {
				a.cfg.AutoStartDelay = runAutoStartFlag
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runScanner(ctx, a, controller.NewUI(cmd, useTTY), adapter.NewSystemClock(), runCommandsFileFlag)
		},
	}
	cmd.Flags().StringVarP(&runCommandsFileFlag, "commands-file", "f", "", "dispatch lines appended to this file")
	cmd.Flags().DurationVar(&runAutoStartFlag, "auto-start", 0, "start a sweep after this delay (0 disables)")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runScanner hosts a session until ctx is done or the user closes the UI.
func runScanner(ctx context.Context, a *app, ui controller.UI, clock adapter.Clock, commandsFile string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scanner := domain.NewScanner(a.cfg.Scan, clock, ui, a.logger)
	dispatcher := domain.NewDispatcher(scanner, a.catalog, ui, a.logger)
	session := domain.NewSession(scanner, dispatcher, a.logger, domain.WithAutoStart(a.cfg.AutoStartDelay))

	var source *adapter.CommandFileSource

	if commandsFile != "" {
		var err error

		source, err = adapter.NewCommandFileSource(commandsFile, false, a.logger)
		if err != nil {
			return err
		}
	}

	err := ui.Start(
		controller.WithInteractiveMode(),
		controller.WithParts(a.catalog.Parts()),
		controller.WithSubmitter(func(command string) (m.Result, error) {
			return session.Submit(ctx, command)
		}),
		controller.WithClearer(func() (m.Result, error) {
			return session.Clear(ctx)
		}),
	)
	if err != nil {
		return err
	}
	defer ui.Close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return session.Run(gctx)
	})

	if source != nil {
		g.Go(func() error {
			return runCommandSource(gctx, source, session, ui, a.logger)
		})
	}

	g.Go(func() error {
		closed := make(chan struct{})

		go func() {
			ui.Wait()
			close(closed)
		}()

		select {
		case <-closed:
			cancel()
		case <-gctx.Done():
		}

		return nil
	})

	return g.Wait()
}

// runCommandSource feeds a command file into session until either stops.
func runCommandSource(ctx context.Context, source *adapter.CommandFileSource, session *domain.Session, ui controller.UI, logger *zap.Logger) error {
	err := source.Run(ctx, func(ctx context.Context, command string) error {
		result, err := session.Submit(ctx, command)
		if isShutdown(err) {
			return err
		}

		ui.DisplayResult(result, err)

		return nil
	})
	if isShutdown(err) {
		logger.Debug("command file source stopped", zap.Error(err))
		return nil
	}

	return err
}

func isShutdown(err error) bool {
	return errors.Is(err, domain.ErrSessionClosed) || errors.Is(err, context.Canceled)
}
