package dto

// SetupRequest datos de la configuración inicial de la tienda: nombre del
// negocio y credenciales de la única cuenta admin.
type SetupRequest struct {
	ShopName      string
	AdminUsername string
	AdminPassword string
	AdminFullName string
}
