// Toggle command: flips a row's status and cascades to dependents.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleIDField string

var toggleCmd = &cobra.Command{
	Use:   "toggle <table> <id>",
	Short: "Toggle a row's status with cascade",
	Long: `Toggle flips the row's estado between Activo and Inactivo and applies
the cascade rules configured for the table, so every dependent row
reaches the same status in one transaction.

Example:
  cartilla toggle planes 3 --id-field id_plan`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := openDirectory()
		if err != nil {
			return err
		}
		defer dir.Close()

		res, err := dir.CascadeToggleStatus(cmd.Context(), args[0], toggleIDField, parseKey(args[1]))
		if err != nil {
			return fmt.Errorf("toggle %s: %w", args[0], err)
		}

		if flagJSON {
			return printResult(res)
		}
		fmt.Printf("status changed to %s\n", res.NewStatus)
		return nil
	},
}

func init() {
	toggleCmd.Flags().StringVar(&toggleIDField, "id-field", "", "id column name (required)")
	_ = toggleCmd.MarkFlagRequired("id-field")
}
