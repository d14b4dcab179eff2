package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Stock es el total vigente,
// derivado exclusivamente de los movimientos: nunca se edita por update directo.
type Product struct {
	ID                 string
	Code               string // código único legible (el que escanea el lector)
	Name               string
	Description        string
	Brand              string
	Price              decimal.Decimal // precio de venta
	Cost               decimal.Decimal // precio de costo
	Stock              int64           // cantidad vigente, mutada solo por el motor de movimientos
	MinStock           int64           // umbral informativo de alerta
	MaxStock           *int64          // umbral informativo, opcional
	AllowNegativeStock bool
	IsActive           bool
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
