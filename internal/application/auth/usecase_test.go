package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lockre/lockre-pos/internal/application/dto"
	"github.com/lockre/lockre-pos/internal/application/usecase"
	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/infrastructure/sqlite"
)

func newAuthFixture(t *testing.T) *AuthUseCase {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "lockre.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	userRepo := sqlite.NewUserRepository(store)
	_, err = usecase.NewUserUseCase(userRepo).Create(context.Background(), dto.CreateUserRequest{
		Username: "awa",
		Password: "secret123",
		FullName: "Awa Diop",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	return NewAuthUseCase(userRepo, NewSessionRegistry())
}

func TestLogin(t *testing.T) {
	authUC := newAuthFixture(t)

	session, err := authUC.Login(context.Background(), "awa", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "awa", session.User.Username)
	assert.Equal(t, entity.RoleAdmin, session.User.Role)

	current, err := authUC.Current(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, current.ID)
}

// TestLogin_CredencialesInvalidas: usuario inexistente y password incorrecto
// devuelven el mismo error, sin filtrar cuál de los dos falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	authUC := newAuthFixture(t)
	ctx := context.Background()

	_, err := authUC.Login(ctx, "awa", "incorrecto")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = authUC.Login(ctx, "nadie", "secret123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_Idempotente(t *testing.T) {
	authUC := newAuthFixture(t)

	session, err := authUC.Login(context.Background(), "awa", "secret123")
	require.NoError(t, err)

	authUC.Logout(session.ID)
	authUC.Logout(session.ID) // repetir no falla

	_, err = authUC.Current(session.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// TestSesionesIndependientes: dos logins del mismo usuario abren sesiones
// distintas y cerrar una no afecta la otra.
func TestSesionesIndependientes(t *testing.T) {
	authUC := newAuthFixture(t)
	ctx := context.Background()

	s1, err := authUC.Login(ctx, "awa", "secret123")
	require.NoError(t, err)
	s2, err := authUC.Login(ctx, "awa", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, s1.ID, s2.ID)

	authUC.Logout(s1.ID)

	_, err = authUC.Current(s1.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = authUC.Current(s2.ID)
	assert.NoError(t, err)
}
