package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andescore/cartilla/pkg/cartilla"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cartilla v" + cartilla.Version)
	},
}
