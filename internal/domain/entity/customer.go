package entity

// Customer representa un cliente registrado de la tienda.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"` // único
}
