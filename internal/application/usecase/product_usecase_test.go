package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lockre/lockre-pos/internal/application/dto"
	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/infrastructure/sqlite"
)

func newProductUseCase(t *testing.T) *ProductUseCase {
	t.Helper()
	return NewProductUseCase(sqlite.NewProductRepository(newTestStore(t)))
}

func TestProductCreate(t *testing.T) {
	uc := newProductUseCase(t)

	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Riz 1kg",
		Price:    decimal.NewFromInt(1000),
		Stock:    50,
		Category: "alimentation",
		Barcode:  "RIZ-001",
	})
	require.NoError(t, err)
	assert.Positive(t, p.ID)
	assert.Equal(t, "Riz 1kg", p.Name)

	got, err := uc.GetByBarcode(context.Background(), "RIZ-001")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := newProductUseCase(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"sin nombre", dto.CreateProductRequest{Price: decimal.NewFromInt(100), Barcode: "X-1"}},
		{"sin código", dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(100)}},
		{"precio cero", dto.CreateProductRequest{Name: "X", Barcode: "X-1"}},
		{"precio negativo", dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(-5), Barcode: "X-1"}},
		{"stock negativo", dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(100), Stock: -1, Barcode: "X-1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// TestProductCreate_CodigoDuplicado: el escenario de colisión de código de
// barras; el catálogo queda con un solo producto, el original.
func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc := newProductUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Savon", Price: decimal.NewFromInt(300), Barcode: "SAV-001",
	})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProductRequest{
		Name: "Savon parfumé", Price: decimal.NewFromInt(500), Barcode: "SAV-001",
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Savon", list[0].Name)
}

func TestProductUpdate_Parcial(t *testing.T) {
	uc := newProductUseCase(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Sucre", Price: decimal.NewFromInt(600), Stock: 30, Barcode: "SUC-001",
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(650)
	updated, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, newPrice.Equal(updated.Price))
	assert.Equal(t, "Sucre", updated.Name)
	assert.Equal(t, 30, updated.Stock)

	// Los campos presentes se validan igual que en Create.
	empty := ""
	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negative := decimal.NewFromInt(-1)
	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Price: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, 999, dto.UpdateProductRequest{Price: &newPrice})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductAdjustStock(t *testing.T) {
	uc := newProductUseCase(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Thé", Price: decimal.NewFromInt(250), Stock: 10, Barcode: "THE-001",
	})
	require.NoError(t, err)

	updated, err := uc.AdjustStock(ctx, p.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Stock)

	// El stock nunca puede quedar negativo.
	_, err = uc.AdjustStock(ctx, p.ID, -7)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Stock)
}

func TestProductDelete(t *testing.T) {
	uc := newProductUseCase(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Lait", Price: decimal.NewFromInt(800), Barcode: "LAI-001",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, p.ID))
	_, err = uc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
