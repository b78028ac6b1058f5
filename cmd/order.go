package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/seeder"
	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Print the table insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := seeder.CatalogGraph().BuildInsertionOrder()
		if err != nil {
			return err
		}
		for i, table := range order {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, table)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
}
