package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateStock son de uso exclusivo del motor de movimientos,
// dentro de una transacción: el stock nunca se edita por otra vía.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE)
	// para serializar los movimientos concurrentes del mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int64) error
	List(search string, limit, offset int) ([]*entity.Product, error)
	Count(search string) (int, error)
}
