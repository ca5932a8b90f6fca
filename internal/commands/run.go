package commands

import (
	"github.com/spf13/cobra"

	"github.com/tablebill/tablebill/internal/controller"
	"github.com/tablebill/tablebill/internal/ledger"
	"github.com/tablebill/tablebill/internal/terminal"
)

func newRunCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive billing session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			console := terminal.NewConsole(out, e.cfg.Restaurant.Name)
			ctrl := controller.New(e.catalog, ledger.New(), console, e.log)
			e.log.WithField("bill_id", ctrl.BillID().String()).Info("session started")

			return terminal.NewSession(e.catalog, ctrl, console, out).Run(cmd.InOrStdin())
		},
	}

	return cmd
}
