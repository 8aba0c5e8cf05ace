package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. Inmutable una vez creada:
// Total se calcula como Quantity × Price al crearla y nunca se recalcula.
// Customer es texto libre, no una referencia a Customer (comportamiento heredado).
type Sale struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"` // siempre > 0
	Price     decimal.Decimal `json:"price"`    // precio unitario al momento de la venta
	Total     decimal.Decimal `json:"total"`    // Quantity × Price
	Date      time.Time       `json:"date"`
	VendorID  int64           `json:"vendorId"`
	Customer  string          `json:"customer,omitempty"`
}
