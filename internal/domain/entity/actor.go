package entity

// Actor identifica a quien ejecuta una operación (resuelto por el middleware de auth).
type Actor struct {
	ID   string
	Name string
	Role string // "admin" | "bodeguero" | "vendedor"
}
