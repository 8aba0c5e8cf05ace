package dto

import "github.com/shopspring/decimal"

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Name     string
	Price    decimal.Decimal
	Stock    int
	Category string
	Barcode  string
}

// UpdateProductRequest campos opcionales para actualización parcial.
type UpdateProductRequest struct {
	Name     *string
	Price    *decimal.Decimal
	Stock    *int
	Category *string
	Barcode  *string
}

// ProductResponse producto expuesto a la capa de presentación.
type ProductResponse struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Stock    int
	Category string
	Barcode  string
}
