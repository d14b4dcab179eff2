package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrMovementNotFound    = errors.New("movimiento no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidQuantity     = errors.New("la cantidad debe ser un entero positivo")
	ErrInvalidReason       = errors.New("motivo inválido")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrAuditImmutable      = errors.New("no se pueden eliminar movimientos de inventario por auditoría")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia, reintente la operación")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)

// InsufficientStockError detalla un rechazo por stock insuficiente:
// cuánto stock había y cuánto se pidió. Unwrap permite errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	ProductID string
	Stock     int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente. Stock actual: %d, cantidad solicitada: %d", e.Stock, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// InvalidReasonError detalla un motivo no permitido para el tipo de movimiento.
type InvalidReasonError struct {
	MovementType string // ENTRY | EXIT
	Reason       string
}

func (e *InvalidReasonError) Error() string {
	return fmt.Sprintf("motivo inválido para %s: %s", e.MovementType, e.Reason)
}

func (e *InvalidReasonError) Unwrap() error { return ErrInvalidReason }
