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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el almacén local.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create persiste un nuevo usuario y asigna su ID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	id, err := r.store.Create(ctx, CollectionUsers, user)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	rec, err := r.store.Get(ctx, CollectionUsers, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeUser(rec)
}

// GetByUsername obtiene un usuario por su username (índice único).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	recs, err := r.store.GetByIndex(ctx, CollectionUsers, "username", username)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return decodeUser(recs[0])
}

// ListByRole lista usuarios por rol en orden de creación.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	recs, err := r.store.GetByIndex(ctx, CollectionUsers, "role", role)
	if err != nil {
		return nil, err
	}
	return decodeUsers(recs)
}

// List lista todos los usuarios en orden de creación.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	recs, err := r.store.GetAll(ctx, CollectionUsers)
	if err != nil {
		return nil, err
	}
	return decodeUsers(recs)
}

func decodeUser(rec Record) (*entity.User, error) {
	var u entity.User
	if err := json.Unmarshal(rec.Doc, &u); err != nil {
		return nil, fmt.Errorf("decodificar usuario %d: %w", rec.ID, err)
	}
	u.ID = rec.ID
	return &u, nil
}

func decodeUsers(recs []Record) ([]*entity.User, error) {
	var list []*entity.User
	for _, rec := range recs {
		u, err := decodeUser(rec)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, nil
}
