// Rename command: updates a row addressed by name and syncs denormalized copies.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	renameNameField   string
	renameDenormField string
	renameData        string
)

var renameCmd = &cobra.Command{
	Use:   "rename <table> <old-name>",
	Short: "Update a row by name",
	Long: `Rename applies the --data JSON payload to the row addressed by its
current name. When the payload changes the name and --denorm-field is
given, every denormalized copy of the old name in the cartilla table is
rewritten in the same transaction.

Example:
  cartilla rename planes "Plan Oro" --data '{"nombre": "Plan Platino"}' --denorm-field plan`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := parseRecord(renameData)
		if err != nil {
			return err
		}

		dir, err := openDirectory()
		if err != nil {
			return err
		}
		defer dir.Close()

		res, err := dir.UpdateByName(cmd.Context(), args[0], renameNameField, args[1], data, renameDenormField)
		if err != nil {
			return fmt.Errorf("rename %s: %w", args[0], err)
		}

		if flagJSON {
			return printResult(res)
		}
		if res.NewName != res.OldName {
			fmt.Printf("renamed %q to %q (%d denormalized rows updated)\n", res.OldName, res.NewName, res.Renamed)
		} else {
			fmt.Printf("updated %q\n", res.OldName)
		}
		return nil
	},
}

func init() {
	renameCmd.Flags().StringVar(&renameNameField, "name-field", "nombre", "name column used to address the row")
	renameCmd.Flags().StringVar(&renameDenormField, "denorm-field", "", "cartilla column holding the denormalized name")
	renameCmd.Flags().StringVar(&renameData, "data", "", "columns to set as a JSON object (required)")
	_ = renameCmd.MarkFlagRequired("data")
}
