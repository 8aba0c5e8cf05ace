package usecase

import (
	"context"
	"errors"

	"github.com/lockre/lockre-pos/internal/application/dto"
	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/domain/repository"
)

// SetupUseCase configuración inicial de la tienda: nombre del negocio y la
// única cuenta admin del despliegue. Solo puede completarse una vez.
type SetupUseCase struct {
	users    *UserUseCase
	settings repository.SettingsRepository
}

// NewSetupUseCase construye el caso de uso.
func NewSetupUseCase(users *UserUseCase, settings repository.SettingsRepository) *SetupUseCase {
	return &SetupUseCase{users: users, settings: settings}
}

// IsComplete indica si la configuración inicial ya fue realizada.
func (uc *SetupUseCase) IsComplete(ctx context.Context) (bool, error) {
	value, err := uc.settings.Get(ctx, entity.SettingSetupComplete)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return value == "true", nil
}

// Complete crea la cuenta admin y guarda el nombre de la tienda.
// Devuelve domain.ErrSetupDone si ya se completó antes.
func (uc *SetupUseCase) Complete(ctx context.Context, in dto.SetupRequest) (*dto.UserResponse, error) {
	if in.ShopName == "" {
		return nil, domain.ErrInvalidInput
	}
	done, err := uc.IsComplete(ctx)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, domain.ErrSetupDone
	}
	admin, err := uc.users.Create(ctx, dto.CreateUserRequest{
		Username: in.AdminUsername,
		Password: in.AdminPassword,
		FullName: in.AdminFullName,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.settings.Set(ctx, entity.SettingShopName, in.ShopName); err != nil {
		return nil, err
	}
	if err := uc.settings.Set(ctx, entity.SettingSetupComplete, "true"); err != nil {
		return nil, err
	}
	return admin, nil
}

// ShopName devuelve el nombre configurado de la tienda.
func (uc *SetupUseCase) ShopName(ctx context.Context) (string, error) {
	return uc.settings.Get(ctx, entity.SettingShopName)
}
