// Package auth maneja autenticación local y sesiones en memoria.
// La identidad se verifica contra la colección users (hash bcrypt); no hay
// tokens ni estado compartido entre procesos.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: login, logout y sesión actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions *SessionRegistry
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions *SessionRegistry) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions}
}

// Login verifica username/password y abre una sesión.
// Credenciales inválidas devuelven domain.ErrUnauthorized sin distinguir si
// el usuario existe.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.sessions.put(user), nil
}

// Logout descarta la sesión. Idempotente.
func (uc *AuthUseCase) Logout(sessionID string) {
	uc.sessions.remove(sessionID)
}

// Current devuelve la sesión activa o domain.ErrUnauthorized.
func (uc *AuthUseCase) Current(sessionID string) (*Session, error) {
	s := uc.sessions.get(sessionID)
	if s == nil {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}
