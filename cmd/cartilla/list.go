// List command: dumps every row of a table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <table>",
	Short: "List every row of a table",
	Long: fmt.Sprintf(`List returns every row of the given table.

Valid table names: %s

Example:
  cartilla list planes
  cartilla list prestadores --json`, validTableNamesStr),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := openDirectory()
		if err != nil {
			return err
		}
		defer dir.Close()

		rows, err := dir.GetAll(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("list %s: %w", args[0], err)
		}
		return printResult(rows)
	},
}
