package dto

import (
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	ProductID  string `json:"product_id"`
	Type       string `json:"type"` // ENTRY | EXIT
	Quantity   int64  `json:"quantity"`
	Reason     string `json:"reason"`
	Notes      string `json:"notes,omitempty"`
	SourceCode string `json:"source_code,omitempty"` // código leído por el escáner
}

// MovementResponse salida de un movimiento del kardex.
type MovementResponse struct {
	ID         int64     `json:"id"`
	ProductID  string    `json:"product_id"`
	Type       string    `json:"type"`
	Quantity   int64     `json:"quantity"`
	Reason     string    `json:"reason"`
	Notes      string    `json:"notes,omitempty"`
	SourceCode string    `json:"source_code,omitempty"`
	OldStock   int64     `json:"old_stock"`
	NewStock   int64     `json:"new_stock"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToMovementResponse convierte la entidad al DTO de salida.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		Reason:     m.Reason,
		Notes:      m.Notes,
		SourceCode: m.SourceCode,
		OldStock:   m.OldStock,
		NewStock:   m.NewStock,
		UserID:     m.UserID,
		CreatedAt:  m.CreatedAt,
	}
}

// RegisterMovementResponse salida de POST /api/inventory/movements:
// el movimiento comprometido más el stock resultante del producto.
type RegisterMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	NewStock int64            `json:"new_stock"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items      []MovementResponse `json:"items"`
	Pagination Pagination         `json:"pagination"`
}

// MovementListFilters filtros para el listado global.
type MovementListFilters struct {
	ProductCodeContains string `query:"productCode"`
}

// StockResponse foto del stock vigente de un producto.
type StockResponse struct {
	ProductID string `json:"product_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Stock     int64  `json:"stock"`
	MinStock  int64  `json:"min_stock"`
	MaxStock  *int64 `json:"max_stock,omitempty"`
}
