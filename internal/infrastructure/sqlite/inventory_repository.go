package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre el almacén local.
type InventoryRepo struct {
	store *Store
}

// NewInventoryRepository construye el adaptador del libro de inventario.
func NewInventoryRepository(store *Store) *InventoryRepo {
	return &InventoryRepo{store: store}
}

// Create persiste una entrada del libro y asigna su ID.
func (r *InventoryRepo) Create(ctx context.Context, record *entity.InventoryRecord) error {
	id, err := r.store.Create(ctx, CollectionInventory, record)
	if err != nil {
		return err
	}
	record.ID = id
	return nil
}

// GetByProduct lista las entradas del libro para un producto.
func (r *InventoryRepo) GetByProduct(ctx context.Context, productID int64) ([]*entity.InventoryRecord, error) {
	recs, err := r.store.GetByIndex(ctx, CollectionInventory, "productId", productID)
	if err != nil {
		return nil, err
	}
	return decodeInventory(recs)
}

// List lista todas las entradas del libro en orden de inserción.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryRecord, error) {
	recs, err := r.store.GetAll(ctx, CollectionInventory)
	if err != nil {
		return nil, err
	}
	return decodeInventory(recs)
}

func decodeInventory(recs []Record) ([]*entity.InventoryRecord, error) {
	var list []*entity.InventoryRecord
	for _, rec := range recs {
		var item entity.InventoryRecord
		if err := json.Unmarshal(rec.Doc, &item); err != nil {
			return nil, fmt.Errorf("decodificar inventario %d: %w", rec.ID, err)
		}
		item.ID = rec.ID
		list = append(list, &item)
	}
	return list, nil
}
