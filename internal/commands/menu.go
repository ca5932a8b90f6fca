package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablebill/tablebill/internal/model"
	"github.com/tablebill/tablebill/internal/terminal"
)

func newMenuCommand(flags *globalFlags) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List menu items by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, flags)
			if err != nil {
				return err
			}

			var categories []model.Category
			if category != "" {
				c, ok := model.ParseCategory(category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				categories = append(categories, c)
			}

			terminal.PrintMenu(cmd.OutOrStdout(), e.catalog, categories...)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list this category")

	return cmd
}
