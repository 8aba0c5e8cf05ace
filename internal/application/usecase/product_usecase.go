package usecase

import (
	"context"

	"github.com/lockre/lockre-pos/internal/application/dto"
	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// Stock se modifica solo por ajustes explícitos, nunca al registrar ventas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Precio debe ser positivo, stock no negativo y el
// código de barras es obligatorio y único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByBarcode(ctx, in.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		Name:     in.Name,
		Price:    in.Price,
		Stock:    in.Stock,
		Category: in.Category,
		Barcode:  in.Barcode,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetByBarcode obtiene un producto por código de barras.
func (uc *ProductUseCase) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista todos los productos en orden de creación.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica una actualización parcial. Los campos presentes se validan
// igual que en Create; el resto queda intacto.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	fields := make(map[string]any)
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		fields["name"] = *in.Name
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		fields["price"] = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		fields["stock"] = *in.Stock
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Barcode != nil {
		if *in.Barcode == "" {
			return nil, domain.ErrInvalidInput
		}
		fields["barcode"] = *in.Barcode
	}
	if len(fields) == 0 {
		return uc.GetByID(ctx, id)
	}
	product, err := uc.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AdjustStock suma delta al stock del producto (negativo para descontar).
// El resultado nunca puede ser negativo.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, id int64, delta int) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	next := product.Stock + delta
	if next < 0 {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.repo.Update(ctx, id, map[string]any{"stock": next})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		Category: p.Category,
		Barcode:  p.Barcode,
	}
}
