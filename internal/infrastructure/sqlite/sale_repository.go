package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre el almacén local.
type SaleRepo struct {
	store *Store
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(store *Store) *SaleRepo {
	return &SaleRepo{store: store}
}

// Create persiste una venta y asigna su ID. La fecha se normaliza a UTC con
// precisión de segundos para que el índice date ordene cronológicamente.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	sale.Date = sale.Date.UTC().Truncate(time.Second)
	id, err := r.store.Create(ctx, CollectionSales, sale)
	if err != nil {
		return err
	}
	sale.ID = id
	return nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	rec, err := r.store.Get(ctx, CollectionSales, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeSale(rec)
}

// List lista todas las ventas en orden de inserción.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	recs, err := r.store.GetAll(ctx, CollectionSales)
	if err != nil {
		return nil, err
	}
	return decodeSales(recs)
}

// ListRecent lista hasta limit ventas de la más reciente a la más antigua.
func (r *SaleRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	recs, err := r.store.GetRecent(ctx, CollectionSales, limit)
	if err != nil {
		return nil, err
	}
	return decodeSales(recs)
}

// GetByDateRange lista las ventas con fecha en [from, to] inclusive usando la
// consulta por rango sobre el índice date.
func (r *SaleRepo) GetByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	recs, err := r.store.GetByRange(ctx, CollectionSales, "date",
		from.UTC().Truncate(time.Second), to.UTC().Truncate(time.Second))
	if err != nil {
		return nil, err
	}
	return decodeSales(recs)
}

// GetByVendor lista las ventas registradas por un vendedor.
func (r *SaleRepo) GetByVendor(ctx context.Context, vendorID int64) ([]*entity.Sale, error) {
	recs, err := r.store.GetByIndex(ctx, CollectionSales, "vendorId", vendorID)
	if err != nil {
		return nil, err
	}
	return decodeSales(recs)
}

func decodeSale(rec Record) (*entity.Sale, error) {
	var s entity.Sale
	if err := json.Unmarshal(rec.Doc, &s); err != nil {
		return nil, fmt.Errorf("decodificar venta %d: %w", rec.ID, err)
	}
	s.ID = rec.ID
	return &s, nil
}

func decodeSales(recs []Record) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, rec := range recs {
		s, err := decodeSale(rec)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}
