package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bodyscan/internal/controller"
)

// partsCmd represents the parts command.
var partsCmd = newPartsCmd()

func newPartsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parts",
		Short: "List the body parts the scanner recognizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(false)
			if err != nil {
				return err
			}
			defer a.close()

			return controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())).DisplayParts(a.catalog.Parts())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(partsCmd)
}
