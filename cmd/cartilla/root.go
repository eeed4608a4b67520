// Root command for the cartilla CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/andescore/cartilla/internal/paths"
	"github.com/andescore/cartilla/pkg/cartilla"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Config values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDriver  string
	configDataDir string
	configDSN     string
)

var rootCmd = &cobra.Command{
	Use:     "cartilla",
	Short:   "Cartilla administers the medical-provider directory",
	Version: cartilla.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDriver = cfg.GetString(cfgKeyDriver)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDSN = cfg.GetString(cfgKeyDSN)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.cartilla-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(relationsCmd)
	rootCmd.AddCommand(uniqueCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > CARTILLA_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > CARTILLA_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
