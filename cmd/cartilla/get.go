// Get command: retrieves one row by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getIDField string

var getCmd = &cobra.Command{
	Use:   "get <table> <id>",
	Short: "Get a row by id",
	Long: `Get retrieves one row from the given table by its id column.

Example:
  cartilla get planes 7 --id-field id_plan
  cartilla get prestadores 12 --id-field id_prestador`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := openDirectory()
		if err != nil {
			return err
		}
		defer dir.Close()

		rec, err := dir.GetByID(cmd.Context(), args[0], getIDField, parseKey(args[1]))
		if err != nil {
			return fmt.Errorf("get %s: %w", args[0], err)
		}
		if rec == nil {
			return fmt.Errorf("row %q not found in table %q", args[1], args[0])
		}
		return printResult(rec)
	},
}

func init() {
	getCmd.Flags().StringVar(&getIDField, "id-field", "", "id column name (required)")
	_ = getCmd.MarkFlagRequired("id-field")
}
