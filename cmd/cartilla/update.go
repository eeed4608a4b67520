// Update command: applies a JSON payload to a row addressed by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	updateIDField string
	updateData    string
)

var updateCmd = &cobra.Command{
	Use:   "update <table> <id>",
	Short: "Update a row by id",
	Long: `Update applies the --data JSON payload to the row addressed by id.

Example:
  cartilla update prestadores 12 --id-field id_prestador --data '{"telefono": "011-4000-1111"}'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := parseRecord(updateData)
		if err != nil {
			return err
		}

		dir, err := openDirectory()
		if err != nil {
			return err
		}
		defer dir.Close()

		rec, err := dir.Update(cmd.Context(), args[0], updateIDField, parseKey(args[1]), data)
		if err != nil {
			return fmt.Errorf("update %s: %w", args[0], err)
		}
		return printResult(rec)
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateIDField, "id-field", "", "id column name (required)")
	updateCmd.Flags().StringVar(&updateData, "data", "", "columns to set as a JSON object (required)")
	_ = updateCmd.MarkFlagRequired("id-field")
	_ = updateCmd.MarkFlagRequired("data")
}
