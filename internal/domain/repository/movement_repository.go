package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos (DIP).
// Solo inserta y lee: el kardex es append-only y no expone update ni delete.
type MovementRepository interface {
	// Create inserta el movimiento y asigna movement.ID (secuencia monotónica)
	// y movement.CreatedAt según la BD.
	Create(movement *entity.Movement) error
	GetByID(id int64) (*entity.Movement, error)
	// ListByProduct devuelve movimientos de un producto, más recientes primero.
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
	CountByProduct(productID string) (int, error)
	// List devuelve movimientos globales, más recientes primero.
	// codeContains filtra por coincidencia parcial del código de producto; vacío = sin filtro.
	List(codeContains string, limit, offset int) ([]*entity.Movement, error)
	Count(codeContains string) (int, error)
}
