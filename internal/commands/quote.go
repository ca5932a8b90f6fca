package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tablebill/tablebill/internal/controller"
	"github.com/tablebill/tablebill/internal/ledger"
	"github.com/tablebill/tablebill/internal/terminal"
)

func newQuoteCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote <item>...",
		Short: "Print the bill for a list of items",
		Long:  "Each item is a menu ID or exact name. Repeat an item to order more than one.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, flags)
			if err != nil {
				return err
			}

			// Only the final bill is printed.
			quiet := terminal.NewConsole(io.Discard, "")
			ctrl := controller.New(e.catalog, ledger.New(), quiet, e.log)

			for _, ref := range args {
				entry, err := e.catalog.Resolve(ref)
				if err != nil {
					return err
				}
				if err := ctrl.SelectItem(entry.ID); err != nil {
					return fmt.Errorf("adding %s: %w", ref, err)
				}
			}

			snap := ctrl.Snapshot()
			terminal.NewConsole(cmd.OutOrStdout(), e.cfg.Restaurant.Name).Render(snap.Lines, snap.Totals)
			return nil
		},
	}

	return cmd
}
