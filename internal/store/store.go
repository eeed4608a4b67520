package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite

	"github.com/andescore/cartilla/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the sqlite database file created under Config.DataDir.
const dbFileName = "cartilla.db"

// Store is the data-access layer over one relational database. All methods
// are safe for concurrent use; the store itself holds no mutable state
// beyond the connection pool.
type Store struct {
	db     *sql.DB
	exec   executor
	alw    *Allowlist
	schema Schema
	rules  map[string][]compiledRule
	audit  string // prepared INSERT for the audit journal
	log    *slog.Logger
}

// Open opens a store with the default directory schema.
func Open(cfg types.Config) (*Store, error) {
	return OpenSchema(cfg, DefaultSchema())
}

// OpenSchema opens a store with a caller-supplied schema. Every identifier
// the schema configuration names is validated against its own allowlist
// here, once, so the per-operation gates only ever see caller input.
func OpenSchema(cfg types.Config, sch Schema) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s, err := build(sch)
	if err != nil {
		return nil, err
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	s.db = db
	s.exec = &sqlExecutor{db: db, driver: cfg.Driver, log: s.log}

	if cfg.Driver == types.DriverSQLite {
		if _, err := db.Exec(schemaSQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return s, nil
}

// build validates the schema configuration and precompiles the cascade rule
// statements and the audit insert. It attaches no database.
func build(sch Schema) (*Store, error) {
	s := &Store{
		alw:    NewAllowlist(sch.Tables, sch.Fields),
		schema: sch,
		rules:  make(map[string][]compiledRule, len(sch.Cascades)),
		log:    slog.Default(),
	}

	if _, err := s.alw.Field(statusColumn); err != nil {
		return nil, err
	}
	for table, idCol := range sch.IDColumns {
		if _, err := s.alw.Table(table); err != nil {
			return nil, err
		}
		if _, err := s.alw.Field(idCol); err != nil {
			return nil, err
		}
	}
	for table, nameCol := range sch.NameColumns {
		if _, err := s.alw.Table(table); err != nil {
			return nil, err
		}
		if _, err := s.alw.Field(nameCol); err != nil {
			return nil, err
		}
	}
	for table, deps := range sch.Dependents {
		if _, err := s.alw.Table(table); err != nil {
			return nil, err
		}
		for _, d := range deps {
			if _, err := s.alw.Table(d.Table); err != nil {
				return nil, err
			}
			if _, err := s.alw.Field(d.Column); err != nil {
				return nil, err
			}
		}
	}
	if sch.DenormTable != "" {
		if _, err := s.alw.Table(sch.DenormTable); err != nil {
			return nil, err
		}
	}
	for table, rules := range sch.Cascades {
		if _, err := s.alw.Table(table); err != nil {
			return nil, err
		}
		compiled := make([]compiledRule, 0, len(rules))
		for _, r := range rules {
			cr, err := compileRule(s.alw, r)
			if err != nil {
				return nil, err
			}
			compiled = append(compiled, cr)
		}
		s.rules[table] = compiled
	}

	audit, err := buildAuditSQL(s.alw)
	if err != nil {
		return nil, err
	}
	s.audit = audit

	return s, nil
}

// openDB opens the configured driver. SQLite stores live in DataDir;
// Postgres connects through the pgx stdlib driver with pool limits and a
// ping deadline.
func openDB(cfg types.Config) (*sql.DB, error) {
	switch cfg.Driver {
	case types.DriverPostgres:
		db, err := sql.Open("pgx", cfg.DSN)
		if err != nil {
			return nil, err
		}
		db.SetConnMaxLifetime(cfg.GetConnMaxLifetime())
		db.SetMaxOpenConns(cfg.GetMaxOpenConns())
		db.SetMaxIdleConns(cfg.GetMaxIdleConns())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil

	default:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = "."
		}
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, err
		}
		db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(cfg.GetMaxOpenConns())
		return db, nil
	}
}

// Close releases the connection pool. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
