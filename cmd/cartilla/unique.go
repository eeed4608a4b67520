// Unique command: checks whether a value is free in a column.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	uniqueExcludeField string
	uniqueExcludeID    string
)

var uniqueCmd = &cobra.Command{
	Use:   "unique <table> <field> <value>",
	Short: "Check if a value is unused in a column",
	Long: `Unique reports whether the value is free in the given column. Pass
--exclude-field and --exclude-id to ignore one row, which is how an
edit form checks a value against every row but its own.

Example:
  cartilla unique prestadores email "paz@example.com" --exclude-field id_prestador --exclude-id 12`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := openDirectory()
		if err != nil {
			return err
		}
		defer dir.Close()

		var excludeID any
		if uniqueExcludeID != "" {
			excludeID = parseKey(uniqueExcludeID)
		}

		free, err := dir.CheckUnique(cmd.Context(), args[0], args[1], parseKey(args[2]), uniqueExcludeField, excludeID)
		if err != nil {
			return fmt.Errorf("check unique in %s: %w", args[0], err)
		}

		if free {
			fmt.Println("unique")
		} else {
			fmt.Println("taken")
		}
		return nil
	},
}

func init() {
	uniqueCmd.Flags().StringVar(&uniqueExcludeField, "exclude-field", "", "id column of the row to ignore")
	uniqueCmd.Flags().StringVar(&uniqueExcludeID, "exclude-id", "", "id of the row to ignore")
}
