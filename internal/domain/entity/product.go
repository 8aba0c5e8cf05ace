package entity

import "github.com/shopspring/decimal"

// Product representa un artículo en venta.
// Stock se modifica solo por ajustes explícitos, nunca al registrar una venta;
// el libro de inventario (InventoryRecord) es un registro separado sin conciliar.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"` // precio de venta, siempre > 0
	Stock    int             `json:"stock"` // unidades disponibles, nunca negativo
	Category string          `json:"category"`
	Barcode  string          `json:"barcode"` // único
}
