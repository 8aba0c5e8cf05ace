package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrSchemaVersion = errors.New("versión de esquema no soportada")
	ErrUnknownIndex  = errors.New("índice desconocido")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrSetupPending  = errors.New("la configuración inicial no está completa")
	ErrSetupDone     = errors.New("la configuración inicial ya fue completada")
)
