package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/kardex-api/internal/application/inventory"
)

var _ inventory.AuditSink = (*AuditSink)(nil)

// AuditSink persiste eventos de auditoría en audit_logs. Es un colaborador
// best-effort: escribe fuera de la transacción del movimiento y sus errores
// los decide el caller (el motor los registra en el log y sigue).
type AuditSink struct {
	pool *pgxpool.Pool
}

// NewAuditSink construye el sink con el pool.
func NewAuditSink(pool *pgxpool.Pool) *AuditSink {
	return &AuditSink{pool: pool}
}

// Notify inserta el evento en la bitácora de auditoría.
func (s *AuditSink) Notify(ctx context.Context, event inventory.AuditEvent) error {
	details, err := json.Marshal(event.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}
	query := `
		INSERT INTO audit_logs (id, action, entity, entity_id, entity_name, description, details, user_id, user_name, user_role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())`
	_, err = s.pool.Exec(ctx, query,
		uuid.New().String(), event.Action, event.Entity, event.EntityID,
		event.EntityName, event.Description, details,
		event.UserID, event.UserName, event.UserRole,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
