package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lockre/lockre-pos/internal/domain/entity"
)

// Session es el estado efímero de un usuario autenticado: se deriva de la
// colección users en el login y se descarta en el logout. Vive solo en
// memoria del proceso, nunca se persiste.
type Session struct {
	ID        string
	User      *entity.User
	CreatedAt time.Time
}

// SessionRegistry guarda las sesiones activas del proceso. Reemplaza al
// estado global mutable: el dueño del registro es el punto de entrada y se
// pasa por referencia a quien lo necesite.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionRegistry construye un registro vacío.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

func (r *SessionRegistry) put(user *entity.User) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		User:      user,
		CreatedAt: time.Now(),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *SessionRegistry) get(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

func (r *SessionRegistry) remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
