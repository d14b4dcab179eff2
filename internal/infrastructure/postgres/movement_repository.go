package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, type, quantity, reason, notes, source_code, old_stock, new_stock, user_id, created_at`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
// La tabla inventory_movements es append-only: no hay UPDATE ni DELETE aquí por diseño.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento. La BD asigna id (BIGSERIAL, monotónico) y created_at,
// que se devuelven en el mismo round-trip vía RETURNING.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO inventory_movements (product_id, type, quantity, reason, notes, source_code, old_stock, new_stock, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	userID := (*string)(nil)
	if movement.UserID != "" {
		userID = &movement.UserID
	}
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Type, movement.Quantity, movement.Reason,
		movement.Notes, movement.SourceCode, movement.OldStock, movement.NewStock, userID,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var userID *string
	err := row.Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.Notes,
		&m.SourceCode, &m.OldStock, &m.NewStock, &userID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID != nil {
		m.UserID = *userID
	}
	return &m, nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByProduct lista movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM inventory_movements
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// CountByProduct cuenta los movimientos de un producto.
func (r *MovementRepo) CountByProduct(productID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM inventory_movements WHERE product_id = $1`, productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count movements by product: %w", err)
	}
	return total, nil
}

// List lista movimientos globales, más recientes primero, con filtro opcional
// por coincidencia parcial en el código del producto.
func (r *MovementRepo) List(codeContains string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.reason, m.notes, m.source_code, m.old_stock, m.new_stock, m.user_id, m.created_at
		FROM inventory_movements m`
	args := []any{}
	pos := 1
	if codeContains != "" {
		query += fmt.Sprintf(`
		JOIN products p ON p.id = m.product_id AND p.code ILIKE $%d`, pos)
		args = append(args, "%"+codeContains+"%")
		pos++
	}
	query += fmt.Sprintf(`
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// Count cuenta movimientos globales con el mismo filtro de List.
func (r *MovementRepo) Count(codeContains string) (int, error) {
	query := `SELECT count(*) FROM inventory_movements m`
	args := []any{}
	if codeContains != "" {
		query += ` JOIN products p ON p.id = m.product_id AND p.code ILIKE $1`
		args = append(args, "%"+codeContains+"%")
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}

func collectMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var userID *string
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.Notes,
			&m.SourceCode, &m.OldStock, &m.NewStock, &userID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if userID != nil {
			m.UserID = *userID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
