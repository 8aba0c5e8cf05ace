package sqlite

import (
	"context"

	"github.com/lockre/lockre-pos/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre el almacén local.
type SettingsRepo struct {
	store *Store
}

// NewSettingsRepository construye el adaptador de configuración.
func NewSettingsRepository(store *Store) *SettingsRepo {
	return &SettingsRepo{store: store}
}

// Set guarda el valor para la clave (last-write-wins).
func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	return r.store.SetSetting(ctx, key, value)
}

// Get devuelve el valor o domain.ErrNotFound.
func (r *SettingsRepo) Get(ctx context.Context, key string) (string, error) {
	return r.store.GetSetting(ctx, key)
}
