package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest datos para registrar una venta.
// Price cero significa "usar el precio actual del producto".
// Customer es texto libre opcional, no una referencia a Customer.
type RegisterSaleRequest struct {
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
	VendorID  int64
	Customer  string
}

// SaleResponse venta expuesta a la capa de presentación.
type SaleResponse struct {
	ID        int64
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
	Total     decimal.Decimal
	Date      time.Time
	VendorID  int64
	Customer  string
}
