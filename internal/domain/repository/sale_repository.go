package repository

import (
	"context"
	"time"

	"github.com/lockre/lockre-pos/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	// Create persiste la venta y asigna su ID.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	// List devuelve todas las ventas en orden de inserción.
	List(ctx context.Context) ([]*entity.Sale, error)
	// ListRecent devuelve hasta limit ventas, de la más reciente a la más
	// antigua (orden descendente de creación).
	ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error)
	// GetByDateRange devuelve las ventas con fecha en [from, to] inclusive,
	// en orden ascendente de fecha (consulta por rango sobre el índice date).
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)
	// GetByVendor devuelve las ventas registradas por el vendedor dado.
	GetByVendor(ctx context.Context, vendorID int64) ([]*entity.Sale, error)
}
