package repository

import (
	"context"

	"github.com/lockre/lockre-pos/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	// Create persiste el cliente y asigna su ID. Devuelve domain.ErrDuplicate
	// si el teléfono ya existe.
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}
