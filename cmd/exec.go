package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/bodyscan/internal/adapter"
	"github.com/mouse-blink/bodyscan/internal/controller"
	"github.com/mouse-blink/bodyscan/internal/domain"
)

var execTicksFlag int
var execStdinFlag bool
var execClearFlag bool

const execLongDescription = `Dispatch commands in order and print a trace of every state change.

Time is simulated: after each command up to --ticks sweep steps are applied,
so the output is the same on every run. Unrecognized commands are reported
and do not stop the batch. With --clear the scanner is reset to idle once all
commands ran.

Examples:
  bodyscan exec START_SCAN --ticks 5
  bodyscan exec "my knee hurts" FULL_BODY_GLOW --clear
  printf 'START_SCAN\nSTOP_SCAN\n' | bodyscan exec --stdin --ticks 3`

// execCmd represents the exec command.
var execCmd = newExecCmd()

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [commands...]",
		Short: "Dispatch commands and print the resulting trace",
		Long:  execLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if execTicksFlag < 0 {
				return fmt.Errorf("--ticks must not be negative, got %d", execTicksFlag)
			}

			commands := append([]string(nil), args...)

			if execStdinFlag {
				lines, err := readCommands(cmd.InOrStdin())
				if err != nil {
					return err
				}

				commands = append(commands, lines...)
			}

			a, err := setup(false)
			if err != nil {
				return err
			}
			defer a.close()

			ui := controller.NewSimpleUI(cmd)
			if err := ui.Start(controller.WithTraceMode(), controller.WithTraceTicks()); err != nil {
				return err
			}
			defer ui.Close()

			return execCommands(cmd.Context(), a, ui, commands, execTicksFlag, execClearFlag)
		},
	}
	cmd.Flags().IntVarP(&execTicksFlag, "ticks", "t", 0, "sweep steps to apply after each command")
	cmd.Flags().BoolVar(&execStdinFlag, "stdin", false, "also read commands from stdin, one per line")
	cmd.Flags().BoolVar(&execClearFlag, "clear", false, "reset the scanner to idle after the last command")

	return cmd
}

func init() {
	rootCmd.AddCommand(execCmd)
}

// execCommands runs commands against a session driven by a manual clock.
func execCommands(ctx context.Context, a *app, ui controller.UI, commands []string, ticks int, reset bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	clock := adapter.NewManualClock(time.Unix(0, 0))
	scanner := domain.NewScanner(a.cfg.Scan, clock, ui, a.logger)
	dispatcher := domain.NewDispatcher(scanner, a.catalog, ui, a.logger)
	session := domain.NewSession(scanner, dispatcher, a.logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return session.Run(gctx)
	})

	g.Go(func() error {
		defer cancel()

		for _, command := range commands {
			result, err := session.Submit(gctx, command)
			if err != nil && !errors.Is(err, domain.ErrUnrecognizedCommand) {
				return err
			}

			ui.DisplayResult(result, err)

			for n := 0; n < ticks; n++ {
				delivered, err := clock.Advance(gctx)
				if err != nil {
					return err
				}

				if !delivered {
					break
				}
			}

			// The loop handles calls in order, so this waits for the last tick to render.
			if _, err := session.Snapshot(gctx); err != nil {
				return err
			}
		}

		if reset {
			result, err := session.Clear(gctx)
			if err != nil {
				return err
			}

			ui.DisplayResult(result, nil)
		}

		return nil
	})

	return g.Wait()
}

func readCommands(r io.Reader) ([]string, error) {
	var commands []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		commands = append(commands, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read commands: %w", err)
	}

	return commands, nil
}
