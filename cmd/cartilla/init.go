// Init command: creates the data directory and applies the schema.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the directory store",
	Long:  `Init creates the data directory and applies the schema for the sqlite driver.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := openDirectory()
		if err != nil {
			return err
		}
		defer dir.Close()

		fmt.Println("cartilla store initialized")
		return nil
	},
}
