package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
)

// User representa una cuenta del sistema (administrador o vendedor).
// Solo puede existir una cuenta admin, creada durante la configuración inicial.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"` // único
	PasswordHash string    `json:"passwordHash"` // bcrypt, nunca plano después de persistir
	Role         string    `json:"role"`     // admin, vendor
	FullName     string    `json:"fullName"`
	CreatedAt    time.Time `json:"createdAt"`
}
