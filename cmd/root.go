// Package cmd provides the root command and CLI setup for bodyscan.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/bodyscan/internal/adapter"
	"github.com/mouse-blink/bodyscan/internal/domain"
)

var configFlag string
var verboseFlag bool
var logFileFlag string

const rootLongDescription = `Bodyscan drives a body scanner visual effect from text commands.

Commands are either control tokens or free text describing a symptom:
  START_SCAN       sweep a scan line over the whole body
  STOP_SCAN        stop the sweep
  FULL_BODY_GLOW   toggle the pulsating outline
  <text>           narrow scan of the first body part the text mentions

Resetting to idle is not a command: use ctrl+r in the interactive view or
exec --clear.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bodyscan",
		Short:        "Body scanner visual effect controller",
		Long:         rootLongDescription,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "write logs to this file instead of stderr")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// app holds what every subcommand needs after flags are parsed.
type app struct {
	cfg     adapter.Config
	logger  *zap.Logger
	catalog *domain.Catalog
}

// setup loads the config, logger and catalog. When quiet is set and no log
// file was given, logging is discarded so it cannot draw over a full screen
// view.
func setup(quiet bool) (*app, error) {
	cfg, err := adapter.LoadConfig(configFlag)
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if !quiet || logFileFlag != "" {
		logger, err = adapter.NewLogger(verboseFlag, logFileFlag)
		if err != nil {
			return nil, err
		}
	}

	parts, err := adapter.LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	catalog, err := domain.NewCatalog(parts)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	logger.Debug("catalog loaded", zap.Int("parts", catalog.Len()))

	return &app{cfg: cfg, logger: logger, catalog: catalog}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}
