package repository

import (
	"context"

	"github.com/lockre/lockre-pos/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna su ID. Devuelve domain.ErrDuplicate
	// si el código de barras ya existe.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Update aplica un reemplazo parcial de campos en una sola transacción y
	// devuelve el producto resultante. Los campos únicos modificados se
	// revalidan contra el índice.
	Update(ctx context.Context, id int64, fields map[string]any) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
