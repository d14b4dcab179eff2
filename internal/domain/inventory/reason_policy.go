package inventory

import (
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// Motivos permitidos por tipo de movimiento (servicio de dominio, función pura).
var (
	entryReasons = map[string]struct{}{
		entity.ReasonInventoryAdjustment: {},
		entity.ReasonNewStock:            {},
		entity.ReasonReturnedProduct:     {},
	}
	exitReasons = map[string]struct{}{
		entity.ReasonSale:     {},
		entity.ReasonDamaged:  {},
		entity.ReasonLost:     {},
		entity.ReasonTransfer: {},
	}
)

// ValidateReason verifica que el motivo sea válido para el tipo de movimiento.
// Determinista y sin efectos: mismo (tipo, motivo) produce siempre el mismo resultado.
func ValidateReason(movementType, reason string) error {
	switch movementType {
	case entity.MovementTypeEntry:
		if _, ok := entryReasons[reason]; !ok {
			return &domain.InvalidReasonError{MovementType: movementType, Reason: reason}
		}
	case entity.MovementTypeExit:
		if _, ok := exitReasons[reason]; !ok {
			return &domain.InvalidReasonError{MovementType: movementType, Reason: reason}
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
