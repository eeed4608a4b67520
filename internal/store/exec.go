package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/andescore/cartilla/pkg/types"
)

// executor runs parameterized statements against the relational store.
// Tests substitute a spy to prove that identifier validation fails before
// anything reaches the database.
type executor interface {
	// queryAll runs a SELECT and returns every row as a Record.
	queryAll(ctx context.Context, op, query string, args ...any) ([]types.Record, error)
	// count runs a single-value COUNT query.
	count(ctx context.Context, op, query string, args ...any) (int64, error)
	// exec runs a statement and returns the affected-row count.
	exec(ctx context.Context, op, query string, args ...any) (int64, error)
	// insert runs an INSERT and returns the generated id for idCol, when
	// the driver can produce one.
	insert(ctx context.Context, op, query string, idCol Ident, args ...any) (int64, bool, error)
	// begin opens a transaction bound to one dedicated connection.
	begin(ctx context.Context, op string) (*sql.Tx, error)
	// rebind translates ? placeholders to the driver's native form.
	rebind(query string) string
}

// sqlExecutor is the production executor over database/sql. Backend failures
// are logged with their operation context and wrapped into QueryError; it
// never retries.
type sqlExecutor struct {
	db     *sql.DB
	driver string
	log    *slog.Logger
}

func (e *sqlExecutor) fail(op, query string, err error) error {
	e.log.Error("statement failed", "op", op, "query", query, "error", err)
	return &types.QueryError{Op: op, Err: err}
}

func (e *sqlExecutor) queryAll(ctx context.Context, op, query string, args ...any) ([]types.Record, error) {
	rows, err := e.db.QueryContext(ctx, e.rebind(query), args...)
	if err != nil {
		return nil, e.fail(op, query, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, e.fail(op, query, err)
	}
	return records, nil
}

func (e *sqlExecutor) count(ctx context.Context, op, query string, args ...any) (int64, error) {
	var n int64
	if err := e.db.QueryRowContext(ctx, e.rebind(query), args...).Scan(&n); err != nil {
		return 0, e.fail(op, query, err)
	}
	return n, nil
}

func (e *sqlExecutor) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	res, err := e.db.ExecContext(ctx, e.rebind(query), args...)
	if err != nil {
		return 0, e.fail(op, query, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, e.fail(op, query, err)
	}
	return affected, nil
}

func (e *sqlExecutor) insert(ctx context.Context, op, query string, idCol Ident, args ...any) (int64, bool, error) {
	if idCol == "" {
		if _, err := e.exec(ctx, op, query, args...); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}

	if e.driver == types.DriverPostgres {
		// LastInsertId is unsupported by the pgx driver; capture via RETURNING.
		var id int64
		returning := fmt.Sprintf("%s RETURNING %s", query, idCol)
		if err := e.db.QueryRowContext(ctx, e.rebind(returning), args...).Scan(&id); err != nil {
			return 0, false, e.fail(op, query, err)
		}
		return id, true, nil
	}

	res, err := e.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, false, e.fail(op, query, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, e.fail(op, query, err)
	}
	return id, true, nil
}

func (e *sqlExecutor) begin(ctx context.Context, op string) (*sql.Tx, error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, e.fail(op, "BEGIN", err)
	}
	return tx, nil
}

// rebind converts ? placeholders to $1..$n for the Postgres driver. Queries
// built by this package carry no literal question marks outside placeholders.
func (e *sqlExecutor) rebind(query string) string {
	if e.driver != types.DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// scanRecords reads every row into a Record keyed by column name. []byte
// values are materialized as strings so records survive the rows' buffers.
func scanRecords(rows *sql.Rows) ([]types.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records []types.Record
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(types.Record, len(cols))
		for i, c := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			rec[c] = v
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
