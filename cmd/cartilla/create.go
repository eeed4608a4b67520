// Create command: inserts a new row from a JSON payload.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createData string

var createCmd = &cobra.Command{
	Use:   "create <table>",
	Short: "Create a row",
	Long: `Create inserts a new row into the given table from the --data JSON
payload and prints the row merged with its generated id.

Example:
  cartilla create planes --data '{"nombre": "Plan Oro"}'
  cartilla create prestadores --data '{"nombre": "Dra. Paz", "email": "paz@example.com"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := parseRecord(createData)
		if err != nil {
			return err
		}

		dir, err := openDirectory()
		if err != nil {
			return err
		}
		defer dir.Close()

		rec, err := dir.Create(cmd.Context(), args[0], data)
		if err != nil {
			return fmt.Errorf("create %s: %w", args[0], err)
		}
		return printResult(rec)
	},
}

func init() {
	createCmd.Flags().StringVar(&createData, "data", "", "row as a JSON object (required)")
	_ = createCmd.MarkFlagRequired("data")
}
