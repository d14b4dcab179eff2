package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntry = "ENTRY" // entrada
	MovementTypeExit  = "EXIT"  // salida
)

// Motivos permitidos por tipo de movimiento (vocabulario controlado).
const (
	ReasonInventoryAdjustment = "inventory_adjustment" // entrada
	ReasonNewStock            = "new_stock"            // entrada
	ReasonReturnedProduct     = "returned_product"     // entrada
	ReasonSale                = "sale"                 // salida
	ReasonDamaged             = "damaged"              // salida
	ReasonLost                = "lost"                 // salida
	ReasonTransfer            = "transfer"             // salida
)

// Movement es un asiento inmutable del kardex: registra un cambio de stock con
// la foto del stock antes y después. Una vez creado nunca se actualiza ni se borra.
type Movement struct {
	ID         int64 // asignado por la BD en orden monotónico
	ProductID  string
	Type       string // ENTRY | EXIT
	Quantity   int64  // siempre positivo; el signo lo da Type
	Reason     string
	Notes      string
	SourceCode string // código escaneado por el lector, opcional
	OldStock   int64
	NewStock   int64
	UserID     string
	CreatedAt  time.Time
}
