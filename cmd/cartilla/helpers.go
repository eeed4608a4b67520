// Shared helpers for cartilla CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/andescore/cartilla/pkg/cartilla"
	"github.com/andescore/cartilla/pkg/types"
)

// validTableNamesStr is a comma-separated list of valid table names for
// error output and command help.
var validTableNamesStr = strings.Join(types.StandardTableNames, ", ")

// openDirectory resolves the data directory and opens the store. The caller
// must defer dir.Close().
func openDirectory() (types.Directory, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Driver:  configDriver,
		DataDir: dataDir,
		DSN:     configDSN,
	}
	if cfg.Driver == "" {
		cfg.Driver = defaultDriver
	}

	dir, err := cartilla.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return dir, nil
}

// parseKey interprets a CLI id argument: numeric strings become int64 so
// they compare against integer key columns on every driver.
func parseKey(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

// parseRecord decodes the --data JSON payload into a Record.
func parseRecord(raw string) (types.Record, error) {
	var rec types.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("parse --data: %w", err)
	}
	return rec, nil
}

// printResult renders v as indented JSON when --json is set, otherwise as a
// compact one-value-per-line listing.
func printResult(v any) error {
	if flagJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	switch t := v.(type) {
	case []types.Record:
		for _, rec := range t {
			printRecord(rec)
			fmt.Println()
		}
	case types.Record:
		printRecord(t)
	default:
		fmt.Println(t)
	}
	return nil
}

func printRecord(rec types.Record) {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %v\n", k, rec[k])
	}
}
