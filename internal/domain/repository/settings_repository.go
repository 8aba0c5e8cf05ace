package repository

import "context"

// SettingsRepository define el puerto para la configuración clave/valor.
type SettingsRepository interface {
	// Set guarda el valor para la clave (last-write-wins, sin duplicados).
	Set(ctx context.Context, key, value string) error
	// Get devuelve el valor o domain.ErrNotFound si la clave no existe.
	Get(ctx context.Context, key string) (string, error)
}
