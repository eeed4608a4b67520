// Delete command: removes a row by id, refusing when dependents exist.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteIDField string
	deleteForce   bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete <table> <id>",
	Short: "Delete a row by id",
	Long: `Delete removes the row addressed by id. When dependent rows reference
it (a plan with assignments, a province with localities) the delete is
refused unless --force is given.

Example:
  cartilla delete planes 7 --id-field id_plan`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := openDirectory()
		if err != nil {
			return err
		}
		defer dir.Close()

		id := parseKey(args[1])
		if !deleteForce {
			related, err := dir.HasRelations(cmd.Context(), args[0], deleteIDField, id)
			if err != nil {
				return fmt.Errorf("check relations: %w", err)
			}
			if related {
				return fmt.Errorf("row %v in %q has dependent rows; use --force to delete anyway", id, args[0])
			}
		}

		removed, err := dir.Delete(cmd.Context(), args[0], deleteIDField, id)
		if err != nil {
			return fmt.Errorf("delete %s: %w", args[0], err)
		}
		if !removed {
			return fmt.Errorf("row %v not found in table %q", id, args[0])
		}

		fmt.Println("deleted")
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteIDField, "id-field", "", "id column name (required)")
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "delete even when dependent rows exist")
	_ = deleteCmd.MarkFlagRequired("id-field")
}
