// Package cartilla provides the public entry point for the cartilla
// data-access layer while keeping the implementation internal.
package cartilla

import (
	"github.com/andescore/cartilla/internal/store"
	"github.com/andescore/cartilla/pkg/types"
)

// Version is the release version of the cartilla module.
const Version = "0.1.0"

// Open opens the directory store described by cfg with the standard
// directory schema.
//
// Example:
//
//	dir, err := cartilla.Open(types.Config{
//	    Driver:  types.DriverSQLite,
//	    DataDir: ".cartilla-db",
//	})
//	defer dir.Close()
func Open(cfg types.Config) (types.Directory, error) {
	return store.Open(cfg)
}
