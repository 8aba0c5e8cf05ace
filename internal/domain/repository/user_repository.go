package repository

import (
	"context"

	"github.com/lockre/lockre-pos/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	// Create persiste el usuario y asigna su ID. Devuelve domain.ErrDuplicate
	// si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// ListByRole devuelve los usuarios con el rol dado, en orden de creación.
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
