package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"github.com/lockre/lockre-pos/internal/application/dto"
	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/infrastructure/sqlite"
)

func newSetupUseCase(t *testing.T) (*SetupUseCase, *UserUseCase) {
	t.Helper()
	store := newTestStore(t)
	users := NewUserUseCase(sqlite.NewUserRepository(store))
	return NewSetupUseCase(users, sqlite.NewSettingsRepository(store)), users
}

// TestSetupComplete: la primera pasada crea la cuenta admin y marca la tienda
// como configurada; la segunda falla con ErrSetupDone.
func TestSetupComplete(t *testing.T) {
	setupUC, userUC := newSetupUseCase(t)
	ctx := context.Background()

	done, err := setupUC.IsComplete(ctx)
	require.NoError(t, err)
	assert.False(t, done)

	admin, err := setupUC.Complete(ctx, dto.SetupRequest{
		ShopName:      "Chez Awa",
		AdminUsername: "awa",
		AdminPassword: "secret123",
		AdminFullName: "Awa Diop",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, "Awa Diop", admin.FullName)

	done, err = setupUC.IsComplete(ctx)
	require.NoError(t, err)
	assert.True(t, done)

	name, err := setupUC.ShopName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chez Awa", name)

	_, err = setupUC.Complete(ctx, dto.SetupRequest{
		ShopName:      "Otra",
		AdminUsername: "otra",
		AdminPassword: "x",
	})
	assert.ErrorIs(t, err, domain.ErrSetupDone)

	// Solo existe la cuenta creada en la primera pasada.
	accounts, err := userUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "awa", accounts[0].Username)
}

func TestSetupComplete_Validacion(t *testing.T) {
	setupUC, _ := newSetupUseCase(t)

	_, err := setupUC.Complete(context.Background(), dto.SetupRequest{
		AdminUsername: "awa", AdminPassword: "secret",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_HashYDuplicado(t *testing.T) {
	_, userUC := newSetupUseCase(t)
	ctx := context.Background()

	u, err := userUC.Create(ctx, dto.CreateUserRequest{
		Username: "moussa", Password: "vendedor1", Role: entity.RoleVendor,
	})
	require.NoError(t, err)
	assert.Equal(t, "moussa", u.FullName, "sin nombre completo se usa el username")

	_, err = userUC.Create(ctx, dto.CreateUserRequest{
		Username: "moussa", Password: "otro", Role: entity.RoleVendor,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = userUC.Create(ctx, dto.CreateUserRequest{
		Username: "raro", Password: "x", Role: "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestUserCreate_PasswordNuncaEnClaro verifica que lo persistido es un hash
// bcrypt verificable y no el password original.
func TestUserCreate_PasswordNuncaEnClaro(t *testing.T) {
	store := newTestStore(t)
	repo := sqlite.NewUserRepository(store)
	userUC := NewUserUseCase(repo)
	ctx := context.Background()

	_, err := userUC.Create(ctx, dto.CreateUserRequest{
		Username: "awa", Password: "secret123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	stored, err := repo.GetByUsername(ctx, "awa")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}
