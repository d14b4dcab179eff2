package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/infrastructure/memory"
	"github.com/jhoicas/kardex-api/pkg/logger"
)

// newQueryFixture siembra un producto y n entradas de 1 unidad registradas por
// el motor, para que el historial tenga el encadenado old/new real.
func newQueryFixture(t *testing.T, code string, n int) (*memory.Ledger, *inventory.MovementQueryUseCase) {
	t.Helper()
	ledger := memory.NewLedger()
	register := inventory.NewRegisterMovementUseCase(ledger, ledger.Products(), memory.NewAuditRecorder(), logger.Nop())
	query := inventory.NewMovementQueryUseCase(ledger.Products(), ledger.Movements())

	id := seedProduct(t, ledger, code, 0, false)
	for i := 0; i < n; i++ {
		_, err := register.RegisterMovement(context.Background(), testActor, entry(id, 1, entity.ReasonNewStock))
		require.NoError(t, err)
	}
	return ledger, query
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial por producto
// ──────────────────────────────────────────────────────────────────────────────

func TestListByProduct_PaginacionYOrden(t *testing.T) {
	_, query := newQueryFixture(t, "P1", 45)

	resp, err := query.ListByProduct("P1", dto.PageRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 20)
	assert.Equal(t, dto.Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 45}, resp.Pagination)

	// Más recientes primero: el movimiento 45 encabeza la primera página.
	assert.Equal(t, int64(45), resp.Items[0].ID)
	assert.Equal(t, int64(26), resp.Items[19].ID)

	resp, err = query.ListByProduct("P1", dto.PageRequest{Page: 3, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 5, "la última página lleva el resto")
	assert.Equal(t, int64(1), resp.Items[4].ID)
}

func TestListByProduct_LimitePorDefecto(t *testing.T) {
	_, query := newQueryFixture(t, "P1", 25)

	resp, err := query.ListByProduct("P1", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 20, "el límite por defecto del historial por producto es 20")
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, 1, resp.Pagination.CurrentPage)
}

func TestListByProduct_ProductoInexistente(t *testing.T) {
	_, query := newQueryFixture(t, "P1", 1)

	_, err := query.ListByProduct("NO-EXISTE", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// El historial refleja el encadenado de stock asiento a asiento.
func TestListByProduct_FotoOldNewStock(t *testing.T) {
	_, query := newQueryFixture(t, "P1", 3)

	resp, err := query.ListByProduct("P1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	// Orden descendente: [3→ old 2 new 3, 2→ old 1 new 2, 1→ old 0 new 1].
	assert.Equal(t, int64(2), resp.Items[0].OldStock)
	assert.Equal(t, int64(3), resp.Items[0].NewStock)
	assert.Equal(t, int64(0), resp.Items[2].OldStock)
	assert.Equal(t, int64(1), resp.Items[2].NewStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado global
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltroPorCodigo(t *testing.T) {
	ledger := memory.NewLedger()
	register := inventory.NewRegisterMovementUseCase(ledger, ledger.Products(), memory.NewAuditRecorder(), logger.Nop())
	query := inventory.NewMovementQueryUseCase(ledger.Products(), ledger.Movements())

	idA := seedProduct(t, ledger, "CAM-001", 0, false)
	idB := seedProduct(t, ledger, "ZAP-001", 0, false)
	for i := 0; i < 3; i++ {
		_, err := register.RegisterMovement(context.Background(), testActor, entry(idA, 1, entity.ReasonNewStock))
		require.NoError(t, err)
	}
	_, err := register.RegisterMovement(context.Background(), testActor, entry(idB, 1, entity.ReasonNewStock))
	require.NoError(t, err)

	resp, err := query.List(dto.MovementListFilters{ProductCodeContains: "cam"}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 3)
	assert.Equal(t, 3, resp.Pagination.TotalItems)
	for _, item := range resp.Items {
		assert.Equal(t, idA, item.ProductID)
	}

	// Sin filtro entran todos.
	resp, err = query.List(dto.MovementListFilters{}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 4)
}

// Un filtro sin coincidencias es un resultado vacío válido, no un error.
func TestList_FiltroSinCoincidencias(t *testing.T) {
	_, query := newQueryFixture(t, "P1", 2)

	resp, err := query.List(dto.MovementListFilters{ProductCodeContains: "XYZ"}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, dto.Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0}, resp.Pagination)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta puntual, stock y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID(t *testing.T) {
	_, query := newQueryFixture(t, "P1", 2)

	mov, err := query.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), mov.ID)
	assert.Equal(t, entity.MovementTypeEntry, mov.Type)

	_, err = query.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}

func TestGetStock(t *testing.T) {
	ledger := memory.NewLedger()
	query := inventory.NewMovementQueryUseCase(ledger.Products(), ledger.Movements())
	seedProduct(t, ledger, "P1", 42, false)

	resp, err := query.GetStock("P1")
	require.NoError(t, err)
	assert.Equal(t, "P1", resp.Code)
	assert.Equal(t, int64(42), resp.Stock)

	_, err = query.GetStock("NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// El kardex es append-only: el borrado siempre se rechaza, exista o no el asiento.
func TestRemove_SiempreRechazado(t *testing.T) {
	ledger, query := newQueryFixture(t, "P1", 1)

	assert.ErrorIs(t, query.Remove(1), domain.ErrAuditImmutable)
	assert.ErrorIs(t, query.Remove(999), domain.ErrAuditImmutable)

	// El asiento sigue allí.
	mov, err := ledger.Movements().GetByID(1)
	require.NoError(t, err)
	assert.NotNil(t, mov)
}
