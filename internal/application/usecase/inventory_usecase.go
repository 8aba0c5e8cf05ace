package usecase

import (
	"context"

	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/domain/repository"
)

// InventoryUseCase libro de inventario por producto. Es un registro
// independiente de Product.Stock; los dos no se concilian automáticamente.
type InventoryUseCase struct {
	repo        repository.InventoryRepository
	productRepo repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, productRepo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, productRepo: productRepo}
}

// RecordEntry registra una entrada del libro para un producto existente.
func (uc *InventoryUseCase) RecordEntry(ctx context.Context, productID int64, quantity int) (*entity.InventoryRecord, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	record := &entity.InventoryRecord{ProductID: productID, Quantity: quantity}
	if err := uc.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListByProduct lista las entradas del libro para un producto.
func (uc *InventoryUseCase) ListByProduct(ctx context.Context, productID int64) ([]*entity.InventoryRecord, error) {
	return uc.repo.GetByProduct(ctx, productID)
}

// List lista todas las entradas del libro.
func (uc *InventoryUseCase) List(ctx context.Context) ([]*entity.InventoryRecord, error) {
	return uc.repo.List(ctx)
}
