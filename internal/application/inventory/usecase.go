package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/muebleria-api/internal/application/dto"
	"github.com/invorya/muebleria-api/internal/domain"
	"github.com/invorya/muebleria-api/internal/domain/entity"
	"github.com/invorya/muebleria-api/internal/domain/repository"
)

// MovementUseCase reconcilia el inventario contra el libro de movimientos.
// Invariante: Inventory.Quantity == Σ movimientos con signo (IN suma, OUT resta) y nunca < 0.
// Todas las operaciones corren en una transacción con bloqueo de fila (SELECT FOR UPDATE)
// y hacen Commit o Rollback completo: nunca queda un movimiento sin su efecto aplicado.
type MovementUseCase struct {
	txRunner TxRunner
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner}
}

// notesAdjustment nota fija para los movimientos generados por ajuste manual de existencias.
const notesAdjustment = "ajuste manual de inventario"

// CreateMovement valida y registra un movimiento IN/OUT, actualizando la cantidad del
// inventario en la misma transacción. Una salida que dejaría el stock en negativo
// retorna ErrInsufficientStock sin mutar nada.
func (uc *MovementUseCase) CreateMovement(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 || !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Type:      in.Type,
		Notes:     in.Notes,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		inv, err := lockInventory(invRepo, productRepo, in.ProductID)
		if err != nil {
			return err
		}
		newQty := applyEffect(inv.Quantity, mov)
		if mov.Type == entity.MovementTypeOUT && newQty < 0 {
			return domain.ErrInsufficientStock
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return invRepo.UpdateQuantity(inv.ID, newQty)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// UpdateMovement reemplaza un movimiento existente y reconcilia: revierte el efecto del
// movimiento viejo y aplica el nuevo. Si el producto cambia, se tocan las dos filas de
// inventario (revertir en el producto viejo, aplicar en el nuevo), bloqueadas en orden
// determinista para evitar deadlocks entre updates concurrentes.
func (uc *MovementUseCase) UpdateMovement(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 || !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		old, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrMovementNotFound
		}

		next := &entity.StockMovement{
			ID:        old.ID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Type:      in.Type,
			Notes:     in.Notes,
			UserID:    old.UserID,
			CreatedAt: old.CreatedAt,
		}

		if next.ProductID == old.ProductID {
			inv, err := lockInventory(invRepo, productRepo, old.ProductID)
			if err != nil {
				return err
			}
			final := applyEffect(reverseEffect(inv.Quantity, old), next)
			if final < 0 {
				return domain.ErrInsufficientStock
			}
			if err := invRepo.UpdateQuantity(inv.ID, final); err != nil {
				return err
			}
		} else {
			// Orden estable de bloqueo por product_id
			first, second := old.ProductID, next.ProductID
			if second < first {
				first, second = second, first
			}
			locked := map[string]*entity.Inventory{}
			for _, pid := range []string{first, second} {
				inv, err := lockInventory(invRepo, productRepo, pid)
				if err != nil {
					return err
				}
				locked[pid] = inv
			}
			oldFinal := reverseEffect(locked[old.ProductID].Quantity, old)
			newFinal := applyEffect(locked[next.ProductID].Quantity, next)
			if oldFinal < 0 || newFinal < 0 {
				return domain.ErrInsufficientStock
			}
			if err := invRepo.UpdateQuantity(locked[old.ProductID].ID, oldFinal); err != nil {
				return err
			}
			if err := invRepo.UpdateQuantity(locked[next.ProductID].ID, newFinal); err != nil {
				return err
			}
		}

		if err := movRepo.Update(next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(updated), nil
}

// DeleteMovement elimina un movimiento revirtiendo su efecto. Revertir una entrada (IN)
// que dejaría el stock en negativo retorna ErrStockWouldGoNegative y conserva el movimiento;
// revertir una salida (OUT) siempre suma y no puede fallar por stock.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		old, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrMovementNotFound
		}
		inv, err := lockInventory(invRepo, productRepo, old.ProductID)
		if err != nil {
			return err
		}
		newQty := reverseEffect(inv.Quantity, old)
		if newQty < 0 {
			return domain.ErrStockWouldGoNegative
		}
		if err := invRepo.UpdateQuantity(inv.ID, newQty); err != nil {
			return err
		}
		return movRepo.Delete(old.ID)
	})
}

// SetQuantity fija las existencias de una fila de inventario en un valor absoluto.
// Para mantener el invariante del libro mayor, la diferencia se registra como un
// movimiento compensatorio IN/OUT en la misma transacción; delta cero no escribe nada.
func (uc *MovementUseCase) SetQuantity(ctx context.Context, userID, inventoryID string, quantity int64) error {
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		row, err := invRepo.GetByID(inventoryID)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrInventoryNotFound
		}
		inv, err := lockInventory(invRepo, productRepo, row.ProductID)
		if err != nil {
			return err
		}
		delta := quantity - inv.Quantity
		if delta == 0 {
			return nil
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: inv.ProductID,
			Notes:     notesAdjustment,
			UserID:    userID,
			CreatedAt: time.Now(),
		}
		if delta > 0 {
			mov.Type = entity.MovementTypeIN
			mov.Quantity = delta
		} else {
			mov.Type = entity.MovementTypeOUT
			mov.Quantity = -delta
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return invRepo.UpdateQuantity(inv.ID, quantity)
	})
}

// DeleteProduct elimina el producto con su fila de inventario y todos sus movimientos
// en una sola transacción. No hay reconciliación: desaparecen juntos.
func (uc *MovementUseCase) DeleteProduct(ctx context.Context, productID string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := movRepo.DeleteByProduct(productID); err != nil {
			return err
		}
		if err := invRepo.DeleteByProduct(productID); err != nil {
			return err
		}
		return productRepo.Delete(productID)
	})
}

// lockInventory bloquea la fila de inventario del producto. Distingue producto
// inexistente (ErrNotFound) de producto sin fila de inventario (ErrInventoryNotFound,
// estado inconsistente que no debería ocurrir con el alta atómica de productos).
func lockInventory(invRepo repository.InventoryRepository, productRepo repository.ProductRepository, productID string) (*entity.Inventory, error) {
	inv, err := invRepo.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInventoryNotFound
	}
	return inv, nil
}

// applyEffect aplica el efecto de un movimiento sobre una cantidad: IN suma, OUT resta.
func applyEffect(current int64, mov *entity.StockMovement) int64 {
	if mov.Type == entity.MovementTypeIN {
		return current + mov.Quantity
	}
	return current - mov.Quantity
}

// reverseEffect revierte el efecto de un movimiento: IN resta, OUT suma.
func reverseEffect(current int64, mov *entity.StockMovement) int64 {
	if mov.Type == entity.MovementTypeIN {
		return current - mov.Quantity
	}
	return current + mov.Quantity
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Type:      m.Type,
		Notes:     m.Notes,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
