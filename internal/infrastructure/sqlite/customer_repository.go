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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre el almacén local.
type CustomerRepo struct {
	store *Store
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(store *Store) *CustomerRepo {
	return &CustomerRepo{store: store}
}

// Create persiste un cliente y asigna su ID.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	id, err := r.store.Create(ctx, CollectionCustomers, customer)
	if err != nil {
		return err
	}
	customer.ID = id
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	rec, err := r.store.Get(ctx, CollectionCustomers, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeCustomer(rec)
}

// GetByPhone obtiene un cliente por teléfono (índice único).
func (r *CustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	recs, err := r.store.GetByIndex(ctx, CollectionCustomers, "phone", phone)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return decodeCustomer(recs[0])
}

// List lista todos los clientes en orden de creación.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	recs, err := r.store.GetAll(ctx, CollectionCustomers)
	if err != nil {
		return nil, err
	}
	var list []*entity.Customer
	for _, rec := range recs {
		c, err := decodeCustomer(rec)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func decodeCustomer(rec Record) (*entity.Customer, error) {
	var c entity.Customer
	if err := json.Unmarshal(rec.Doc, &c); err != nil {
		return nil, fmt.Errorf("decodificar cliente %d: %w", rec.ID, err)
	}
	c.ID = rec.ID
	return &c, nil
}
