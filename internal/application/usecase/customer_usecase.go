package usecase

import (
	"context"

	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes registrados.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente. El teléfono es obligatorio y único.
func (uc *CustomerUseCase) Create(ctx context.Context, name, phone string) (*entity.Customer, error) {
	if name == "" || phone == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	customer := &entity.Customer{Name: name, Phone: phone}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByPhone obtiene un cliente por teléfono.
func (uc *CustomerUseCase) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	customer, err := uc.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// List lista todos los clientes en orden de creación.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*entity.Customer, error) {
	return uc.repo.List(ctx)
}
