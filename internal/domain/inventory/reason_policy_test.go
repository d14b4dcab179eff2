package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/inventory"
)

func TestValidateReason_MotivosDeEntrada(t *testing.T) {
	for _, reason := range []string{
		entity.ReasonInventoryAdjustment,
		entity.ReasonNewStock,
		entity.ReasonReturnedProduct,
	} {
		assert.NoError(t, inventory.ValidateReason(entity.MovementTypeEntry, reason), reason)
	}
}

func TestValidateReason_MotivosDeSalida(t *testing.T) {
	for _, reason := range []string{
		entity.ReasonSale,
		entity.ReasonDamaged,
		entity.ReasonLost,
		entity.ReasonTransfer,
	} {
		assert.NoError(t, inventory.ValidateReason(entity.MovementTypeExit, reason), reason)
	}
}

// Un motivo de salida no sirve para una entrada, ni al revés.
func TestValidateReason_MotivoCruzadoSeRechaza(t *testing.T) {
	err := inventory.ValidateReason(entity.MovementTypeEntry, entity.ReasonSale)
	require.ErrorIs(t, err, domain.ErrInvalidReason)

	var reasonErr *domain.InvalidReasonError
	require.ErrorAs(t, err, &reasonErr)
	assert.Equal(t, entity.MovementTypeEntry, reasonErr.MovementType)
	assert.Equal(t, entity.ReasonSale, reasonErr.Reason)

	err = inventory.ValidateReason(entity.MovementTypeExit, entity.ReasonNewStock)
	assert.ErrorIs(t, err, domain.ErrInvalidReason)
}

func TestValidateReason_MotivoDesconocido(t *testing.T) {
	assert.ErrorIs(t, inventory.ValidateReason(entity.MovementTypeEntry, "donation"), domain.ErrInvalidReason)
	assert.ErrorIs(t, inventory.ValidateReason(entity.MovementTypeExit, ""), domain.ErrInvalidReason)
}

func TestValidateReason_TipoDesconocido(t *testing.T) {
	assert.ErrorIs(t, inventory.ValidateReason("ADJUST", entity.ReasonSale), domain.ErrInvalidInput)
	assert.ErrorIs(t, inventory.ValidateReason("", entity.ReasonSale), domain.ErrInvalidInput)
}
