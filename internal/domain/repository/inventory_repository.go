package repository

import (
	"context"

	"github.com/lockre/lockre-pos/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para el libro de
// inventario. Es un registro independiente de Product.Stock (no se concilian).
type InventoryRepository interface {
	// Create persiste la entrada y asigna su ID.
	Create(ctx context.Context, record *entity.InventoryRecord) error
	GetByProduct(ctx context.Context, productID int64) ([]*entity.InventoryRecord, error)
	List(ctx context.Context) ([]*entity.InventoryRecord, error)
}
