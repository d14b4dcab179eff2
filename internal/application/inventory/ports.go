package inventory

import (
	"context"

	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de movimientos: el asiento del kardex y el
// update de stock se comprometen juntos o ninguno. Si la transacción no puede
// serializarse con otra concurrente, Run devuelve domain.ErrConcurrencyConflict.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

// AuditEvent describe un cambio ya comprometido, para la bitácora de auditoría.
type AuditEvent struct {
	Action      string // CREATE, UPDATE, DELETE
	Entity      string // INVENTORY, PRODUCT, ...
	EntityID    int64
	EntityName  string
	Description string
	Details     map[string]any
	UserID      string
	UserName    string
	UserRole    string
}

// AuditSink recibe notificaciones de auditoría en modo best-effort: el caller
// registra el error y sigue, nunca revierte la operación principal por un fallo aquí.
type AuditSink interface {
	Notify(ctx context.Context, event AuditEvent) error
}
