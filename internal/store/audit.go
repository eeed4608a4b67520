package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andescore/cartilla/pkg/types"
)

// auditEntry is one row of the mutation journal. The read API over the
// journal lives elsewhere; this layer only appends.
type auditEntry struct {
	Operation string
	Table     string
	Key       any
	Detail    any
}

// buildAuditSQL renders the journal INSERT from allowlisted identifiers.
func buildAuditSQL(alw *Allowlist) (string, error) {
	t, err := alw.Table(types.TableAuditoria)
	if err != nil {
		return "", err
	}
	cols := []string{"id_auditoria", "operacion", "tabla", "registro", "detalle", "creado_en"}
	idents := make([]Ident, len(cols))
	for i, c := range cols {
		if idents[i], err = alw.Field(c); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?)",
		t, joinIdents(idents, ", ")), nil
}

// newAuditID generates a UUID v7 journal id, falling back to v4 if the
// clock-based generator fails.
func newAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (e auditEntry) args() []any {
	var detail sql.NullString
	if e.Detail != nil {
		if b, err := json.Marshal(e.Detail); err == nil {
			detail = sql.NullString{String: string(b), Valid: true}
		}
	}
	var key sql.NullString
	if e.Key != nil {
		key = sql.NullString{String: fmt.Sprint(e.Key), Valid: true}
	}
	return []any{
		newAuditID(), e.Operation, e.Table, key, detail,
		time.Now().UTC().Format(time.RFC3339),
	}
}

// auditTx appends a journal entry inside the caller's transaction, so the
// entry commits and rolls back with the data it describes.
func (s *Store) auditTx(ctx context.Context, tx *sql.Tx, e auditEntry) error {
	_, err := tx.ExecContext(ctx, s.exec.rebind(s.audit), e.args()...)
	return err
}

// auditBestEffort appends a journal entry for a single-statement operation
// that already succeeded. Journal failures are logged, never surfaced: the
// data mutation is the operation's contract, the journal is not.
func (s *Store) auditBestEffort(ctx context.Context, e auditEntry) {
	if _, err := s.exec.exec(ctx, "audit", s.audit, e.args()...); err != nil {
		s.log.Warn("audit entry dropped", "op", e.Operation, "table", e.Table, "error", err)
	}
}
