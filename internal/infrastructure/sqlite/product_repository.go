package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el almacén local.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	id, err := r.store.Create(ctx, CollectionProducts, product)
	if err != nil {
		return err
	}
	product.ID = id
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	rec, err := r.store.Get(ctx, CollectionProducts, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeProduct(rec)
}

// GetByBarcode obtiene un producto por su código de barras (índice único).
func (r *ProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	recs, err := r.store.GetByIndex(ctx, CollectionProducts, "barcode", barcode)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return decodeProduct(recs[0])
}

// List lista todos los productos en orden de creación.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	recs, err := r.store.GetAll(ctx, CollectionProducts)
	if err != nil {
		return nil, err
	}
	var list []*entity.Product
	for _, rec := range recs {
		p, err := decodeProduct(rec)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

// Update aplica un reemplazo parcial de campos en una sola transacción.
// Devuelve domain.ErrNotFound si el producto no existe y domain.ErrDuplicate
// si el nuevo código de barras ya está usado.
func (r *ProductRepo) Update(ctx context.Context, id int64, fields map[string]any) (*entity.Product, error) {
	rec, err := r.store.Update(ctx, CollectionProducts, id, fields)
	if err != nil {
		return nil, err
	}
	return decodeProduct(rec)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, CollectionProducts, id)
}

func decodeProduct(rec Record) (*entity.Product, error) {
	var p entity.Product
	if err := json.Unmarshal(rec.Doc, &p); err != nil {
		return nil, fmt.Errorf("decodificar producto %d: %w", rec.ID, err)
	}
	p.ID = rec.ID
	return &p, nil
}
