package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/pkg/logger"
)

const (
	// maxTxAttempts reintentos ante conflictos de serialización antes de rendirse.
	maxTxAttempts = 3
	// auditTimeout tope del intento best-effort de notificar auditoría.
	auditTimeout = 3 * time.Second
)

// RegisterMovementUseCase registra movimientos de inventario de forma transaccional:
// valida, bloquea la fila del producto (SELECT FOR UPDATE), inserta el asiento del
// kardex con la foto old/new stock y actualiza el stock vigente en un solo Commit.
// Los movimientos de un mismo producto quedan serializados entre sí; productos
// distintos avanzan en paralelo.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	audit       AuditSink
	log         *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	audit AuditSink,
	log *logger.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		audit:       audit,
		log:         log,
	}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID  string
	Type       string // ENTRY | EXIT
	Quantity   int64
	Reason     string
	Notes      string
	SourceCode string
}

// RegisterMovement valida la entrada, aplica el movimiento de forma atómica y,
// si el Commit fue exitoso, notifica la auditoría en modo best-effort.
// Ante conflicto de serialización reintenta la transacción hasta maxTxAttempts veces.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, actor entity.Actor, input MovementInput) (*entity.Movement, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if err := domaininv.ValidateReason(input.Type, input.Reason); err != nil {
		return nil, err
	}

	var movement *entity.Movement
	for attempt := 1; ; attempt++ {
		err = uc.txRunner.Run(ctx, func(
			productRepo repository.ProductRepository,
			movementRepo repository.MovementRepository,
		) error {
			// Releer bajo el bloqueo de fila: la verificación de existencia y de
			// stock suficiente debe ocurrir con la fila bloqueada, no antes.
			p, err := productRepo.GetForUpdate(input.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrProductNotFound
			}

			oldStock := p.Stock
			var newStock int64
			if input.Type == entity.MovementTypeEntry {
				newStock = oldStock + input.Quantity
			} else {
				newStock = oldStock - input.Quantity
				if newStock < 0 && !p.AllowNegativeStock {
					return &domain.InsufficientStockError{
						ProductID: p.ID,
						Stock:     oldStock,
						Requested: input.Quantity,
					}
				}
			}

			mov := &entity.Movement{
				ProductID:  p.ID,
				Type:       input.Type,
				Quantity:   input.Quantity,
				Reason:     input.Reason,
				Notes:      input.Notes,
				SourceCode: input.SourceCode,
				OldStock:   oldStock,
				NewStock:   newStock,
				UserID:     actor.ID,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
			if err := productRepo.UpdateStock(p.ID, newStock); err != nil {
				return err
			}
			movement = mov
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrConcurrencyConflict) && attempt < maxTxAttempts {
			continue
		}
		return nil, err
	}

	uc.notifyAudit(product, movement, actor)
	return movement, nil
}

// notifyAudit informa el movimiento ya comprometido a la bitácora de auditoría.
// Un fallo aquí se registra en el log y se descarta: el kardex ya es autoritativo.
// Usa un contexto propio con timeout para no quedar atado a la cancelación del caller.
func (uc *RegisterMovementUseCase) notifyAudit(product *entity.Product, mov *entity.Movement, actor entity.Actor) {
	direction := "entrada"
	if mov.Type == entity.MovementTypeExit {
		direction = "salida"
	}
	event := AuditEvent{
		Action:      "UPDATE",
		Entity:      "INVENTORY",
		EntityID:    mov.ID,
		EntityName:  fmt.Sprintf("%s (%s)", product.Name, product.Code),
		Description: fmt.Sprintf("Movimiento de %s: %d unidades por %s", direction, mov.Quantity, mov.Reason),
		Details: map[string]any{
			"product_id":   mov.ProductID,
			"product_code": product.Code,
			"type":         mov.Type,
			"quantity":     mov.Quantity,
			"reason":       mov.Reason,
			"old_stock":    mov.OldStock,
			"new_stock":    mov.NewStock,
			"source_code":  mov.SourceCode,
			"notes":        mov.Notes,
		},
		UserID:   actor.ID,
		UserName: actor.Name,
		UserRole: actor.Role,
	}

	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()
	if err := uc.audit.Notify(ctx, event); err != nil {
		uc.log.Warn().Err(err).
			Int64("movement_id", mov.ID).
			Str("product_id", mov.ProductID).
			Msg("no se pudo registrar la auditoría del movimiento")
	}
}
