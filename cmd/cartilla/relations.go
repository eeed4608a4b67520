// Relations command: replaces a parent's join-table rows with a new set.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var relationsCmd = &cobra.Command{
	Use:   "relations <join-table> <parent-field> <parent-id> <value-field> [value...]",
	Short: "Replace a parent's relation set",
	Long: `Relations deletes every row of the join table belonging to the parent
and inserts one row per value given. With no values the parent ends up
with an empty set.

Example:
  cartilla relations prestador_planes id_prestador 12 id_plan 1 3 5`,
	Args: cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := openDirectory()
		if err != nil {
			return err
		}
		defer dir.Close()

		values := make([]any, 0, len(args)-4)
		for _, v := range args[4:] {
			values = append(values, parseKey(v))
		}

		err = dir.ReplaceRelations(cmd.Context(), args[0], args[1], parseKey(args[2]), args[3], values)
		if err != nil {
			return fmt.Errorf("replace relations in %s: %w", args[0], err)
		}

		fmt.Printf("replaced with %d relations\n", len(values))
		return nil
	},
}
