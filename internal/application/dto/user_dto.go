package dto

import "time"

// CreateUserRequest datos para crear una cuenta (el password llega plano y se
// hashea con bcrypt en el caso de uso, nunca se persiste en claro).
type CreateUserRequest struct {
	Username string
	Password string
	FullName string
	Role     string
}

// UserResponse usuario expuesto a la capa de presentación (sin hash).
type UserResponse struct {
	ID        int64
	Username  string
	Role      string
	FullName  string
	CreatedAt time.Time
}
