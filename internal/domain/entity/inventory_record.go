package entity

// InventoryRecord es una entrada del libro de inventario, independiente de
// Product.Stock. Los dos registros no se concilian automáticamente.
type InventoryRecord struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}
