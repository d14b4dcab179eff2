package inventory

import (
	"fmt"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// Límites por defecto de los listados (mismos del endpoint original).
const (
	defaultListLimit      = 50
	defaultByProductLimit = 20
)

// MovementQueryUseCase lado de lectura del kardex: historial paginado y foto de stock.
// Solo lee estado comprometido; nunca muta.
type MovementQueryUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) *MovementQueryUseCase {
	return &MovementQueryUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetStock devuelve la foto del stock vigente de un producto por código.
func (uc *MovementQueryUseCase) GetStock(productCode string) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetByCode(productCode)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return &dto.StockResponse{
		ProductID: product.ID,
		Code:      product.Code,
		Name:      product.Name,
		Stock:     product.Stock,
		MinStock:  product.MinStock,
		MaxStock:  product.MaxStock,
	}, nil
}

// ListByProduct devuelve el historial de un producto, más recientes primero.
func (uc *MovementQueryUseCase) ListByProduct(productCode string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.Normalize(defaultByProductLimit)

	product, err := uc.productRepo.GetByCode(productCode)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	movements, err := uc.movementRepo.ListByProduct(product.ID, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	total, err := uc.movementRepo.CountByProduct(product.ID)
	if err != nil {
		return nil, fmt.Errorf("contar movimientos: %w", err)
	}

	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items:      items,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// List devuelve movimientos globales paginados. Sin verificación de existencia:
// un filtro que no coincide con nada produce un resultado vacío válido.
func (uc *MovementQueryUseCase) List(filters dto.MovementListFilters, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.Normalize(defaultListLimit)

	movements, err := uc.movementRepo.List(filters.ProductCodeContains, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	total, err := uc.movementRepo.Count(filters.ProductCodeContains)
	if err != nil {
		return nil, fmt.Errorf("contar movimientos: %w", err)
	}

	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items:      items,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// GetByID devuelve un movimiento puntual.
func (uc *MovementQueryUseCase) GetByID(id int64) (*dto.MovementResponse, error) {
	movement, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("buscar movimiento: %w", err)
	}
	if movement == nil {
		return nil, domain.ErrMovementNotFound
	}
	resp := dto.ToMovementResponse(movement)
	return &resp, nil
}

// Remove siempre falla: el kardex es append-only y borrar movimientos rompería
// la auditoría. Se mantiene la operación para responder de forma explícita.
func (uc *MovementQueryUseCase) Remove(id int64) error {
	return domain.ErrAuditImmutable
}
