package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner            = (*Ledger)(nil)
	_ repository.ProductRepository  = (*ProductStore)(nil)
	_ repository.MovementRepository = (*MovementStore)(nil)
)

// Ledger guarda productos y movimientos en memoria con las mismas garantías que
// la implementación PostgreSQL: Run es todo-o-nada y el mutex cumple el papel
// del bloqueo de fila, así que dos movimientos del mismo producto nunca se
// intercalan. Sirve para tests y para levantar la API sin base de datos.
type Ledger struct {
	mu        sync.Mutex
	products  map[string]*entity.Product // por ID
	movements []*entity.Movement
	nextID    int64
}

// NewLedger construye un ledger vacío.
func NewLedger() *Ledger {
	return &Ledger{products: make(map[string]*entity.Product)}
}

// Products devuelve la vista ProductRepository del ledger.
func (l *Ledger) Products() *ProductStore { return &ProductStore{l: l} }

// Movements devuelve la vista MovementRepository del ledger.
func (l *Ledger) Movements() *MovementStore { return &MovementStore{l: l} }

// Run ejecuta fn sobre una vista transaccional. Las escrituras quedan en staging
// y solo se aplican si fn no devuelve error.
func (l *Ledger) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := &ledgerTx{l: l, stock: make(map[string]int64)}
	if err := fn(&txProducts{tx}, &txMovements{tx}); err != nil {
		return err
	}

	// Commit: aplicar staging de una sola vez.
	now := time.Now()
	for _, m := range tx.pending {
		l.nextID++
		m.ID = l.nextID
		m.CreatedAt = now
		l.movements = append(l.movements, m)
	}
	for id, stock := range tx.stock {
		if p, ok := l.products[id]; ok {
			p.Stock = stock
			p.UpdatedAt = now
		}
	}
	return nil
}

// ── vista transaccional ──────────────────────────────────────────────────────

// ledgerTx acumula las escrituras pendientes; las lecturas pasan por el staging.
type ledgerTx struct {
	l       *Ledger
	stock   map[string]int64 // stock pendiente por producto
	pending []*entity.Movement
}

func (tx *ledgerTx) view(id string) *entity.Product {
	p, ok := tx.l.products[id]
	if !ok {
		return nil
	}
	cp := *p
	if s, ok := tx.stock[id]; ok {
		cp.Stock = s
	}
	return &cp
}

type txProducts struct{ tx *ledgerTx }

func (r *txProducts) GetByID(id string) (*entity.Product, error)      { return r.tx.view(id), nil }
func (r *txProducts) GetForUpdate(id string) (*entity.Product, error) { return r.tx.view(id), nil }

func (r *txProducts) GetByCode(code string) (*entity.Product, error) {
	for id, p := range r.tx.l.products {
		if p.Code == code {
			return r.tx.view(id), nil
		}
	}
	return nil, nil
}

func (r *txProducts) UpdateStock(id string, stock int64) error {
	if _, ok := r.tx.l.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	r.tx.stock[id] = stock
	return nil
}

// El motor no crea ni lista productos dentro de la transacción.
func (r *txProducts) Create(*entity.Product) error { return domain.ErrInvalidInput }
func (r *txProducts) Update(*entity.Product) error { return domain.ErrInvalidInput }
func (r *txProducts) List(string, int, int) ([]*entity.Product, error) {
	return nil, domain.ErrInvalidInput
}
func (r *txProducts) Count(string) (int, error) { return 0, domain.ErrInvalidInput }

type txMovements struct{ tx *ledgerTx }

func (r *txMovements) Create(movement *entity.Movement) error {
	cp := *movement
	r.tx.pending = append(r.tx.pending, &cp)
	// ID provisional; el definitivo y CreatedAt se fijan en el Commit.
	movement.ID = r.tx.l.nextID + int64(len(r.tx.pending))
	return nil
}

// El motor no lee historial dentro de la transacción.
func (r *txMovements) GetByID(int64) (*entity.Movement, error) { return nil, domain.ErrInvalidInput }
func (r *txMovements) ListByProduct(string, int, int) ([]*entity.Movement, error) {
	return nil, domain.ErrInvalidInput
}
func (r *txMovements) CountByProduct(string) (int, error) { return 0, domain.ErrInvalidInput }
func (r *txMovements) List(string, int, int) ([]*entity.Movement, error) {
	return nil, domain.ErrInvalidInput
}
func (r *txMovements) Count(string) (int, error) { return 0, domain.ErrInvalidInput }

// ── ProductStore ─────────────────────────────────────────────────────────────

// ProductStore implementa repository.ProductRepository sobre el ledger.
type ProductStore struct{ l *Ledger }

func (r *ProductStore) Create(p *entity.Product) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	for _, existing := range r.l.products {
		if existing.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.l.products[p.ID] = &cp
	return nil
}

func (r *ProductStore) GetByID(id string) (*entity.Product, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	p, ok := r.l.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductStore) GetByCode(code string) (*entity.Product, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	for _, p := range r.l.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetForUpdate fuera de transacción equivale a una lectura simple.
func (r *ProductStore) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *ProductStore) Update(p *entity.Product) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	existing, ok := r.l.products[p.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	stock := existing.Stock // el stock no se edita por esta vía
	cp := *p
	cp.Stock = stock
	r.l.products[p.ID] = &cp
	return nil
}

func (r *ProductStore) UpdateStock(id string, stock int64) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	p, ok := r.l.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}

func (r *ProductStore) List(search string, limit, offset int) ([]*entity.Product, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.l.products {
		if !p.IsActive || !matchesSearch(p, search) {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	if offset >= len(list) {
		return nil, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (r *ProductStore) Count(search string) (int, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	total := 0
	for _, p := range r.l.products {
		if p.IsActive && matchesSearch(p, search) {
			total++
		}
	}
	return total, nil
}

func matchesSearch(p *entity.Product, search string) bool {
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Code), s) || strings.Contains(strings.ToLower(p.Name), s)
}

// ── MovementStore ────────────────────────────────────────────────────────────

// MovementStore implementa repository.MovementRepository sobre el ledger.
type MovementStore struct{ l *Ledger }

// Create inserta un movimiento directamente, sin pasar por Run. Los tests lo
// usan para sembrar historial; el motor siempre inserta dentro de la transacción.
func (r *MovementStore) Create(movement *entity.Movement) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	r.l.nextID++
	movement.ID = r.l.nextID
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now()
	}
	cp := *movement
	r.l.movements = append(r.l.movements, &cp)
	return nil
}

func (r *MovementStore) GetByID(id int64) (*entity.Movement, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	for _, m := range r.l.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MovementStore) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	return r.l.filtered(func(m *entity.Movement) bool { return m.ProductID == productID }, limit, offset), nil
}

func (r *MovementStore) CountByProduct(productID string) (int, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	total := 0
	for _, m := range r.l.movements {
		if m.ProductID == productID {
			total++
		}
	}
	return total, nil
}

func (r *MovementStore) List(codeContains string, limit, offset int) ([]*entity.Movement, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	return r.l.filtered(func(m *entity.Movement) bool { return r.l.codeMatches(m, codeContains) }, limit, offset), nil
}

func (r *MovementStore) Count(codeContains string) (int, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	total := 0
	for _, m := range r.l.movements {
		if r.l.codeMatches(m, codeContains) {
			total++
		}
	}
	return total, nil
}

// filtered devuelve movimientos más recientes primero (orden inverso de inserción).
// Llamar con el mutex tomado.
func (l *Ledger) filtered(keep func(*entity.Movement) bool, limit, offset int) []*entity.Movement {
	var list []*entity.Movement
	skipped := 0
	for i := len(l.movements) - 1; i >= 0 && len(list) < limit; i-- {
		m := l.movements[i]
		if !keep(m) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		cp := *m
		list = append(list, &cp)
	}
	return list
}

func (l *Ledger) codeMatches(m *entity.Movement, codeContains string) bool {
	if codeContains == "" {
		return true
	}
	p, ok := l.products[m.ProductID]
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(p.Code), strings.ToLower(codeContains))
}
