package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
// Stock es el stock inicial; después de creado solo cambia vía movimientos.
type CreateProductRequest struct {
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Brand              string          `json:"brand"`
	Price              decimal.Decimal `json:"price"`
	Cost               decimal.Decimal `json:"cost"`
	Stock              int64           `json:"stock"`
	MinStock           int64           `json:"min_stock"`
	MaxStock           *int64          `json:"max_stock,omitempty"`
	AllowNegativeStock bool            `json:"allow_negative_stock"`
	Notes              string          `json:"notes"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: se maneja vía movimientos).
type UpdateProductRequest struct {
	Name               *string          `json:"name"`
	Description        *string          `json:"description"`
	Brand              *string          `json:"brand"`
	Price              *decimal.Decimal `json:"price"`
	Cost               *decimal.Decimal `json:"cost"`
	MinStock           *int64           `json:"min_stock"`
	MaxStock           *int64           `json:"max_stock"`
	AllowNegativeStock *bool            `json:"allow_negative_stock"`
	Notes              *string          `json:"notes"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                 string          `json:"id"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Brand              string          `json:"brand"`
	Price              decimal.Decimal `json:"price"`
	Cost               decimal.Decimal `json:"cost"`
	Stock              int64           `json:"stock"`
	MinStock           int64           `json:"min_stock"`
	MaxStock           *int64          `json:"max_stock,omitempty"`
	AllowNegativeStock bool            `json:"allow_negative_stock"`
	IsActive           bool            `json:"is_active"`
	Notes              string          `json:"notes"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:                 p.ID,
		Code:               p.Code,
		Name:               p.Name,
		Description:        p.Description,
		Brand:              p.Brand,
		Price:              p.Price,
		Cost:               p.Cost,
		Stock:              p.Stock,
		MinStock:           p.MinStock,
		MaxStock:           p.MaxStock,
		AllowNegativeStock: p.AllowNegativeStock,
		IsActive:           p.IsActive,
		Notes:              p.Notes,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Pagination Pagination        `json:"pagination"`
}
