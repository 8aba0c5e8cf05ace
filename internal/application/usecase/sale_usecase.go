package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/lockre/lockre-pos/internal/application/dto"
	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/domain/repository"
)

// SaleUseCase registro y consulta de ventas. Las ventas son inmutables:
// Total = Quantity × Price se fija al crearlas y nunca se recalcula.
// Registrar una venta NO descuenta Product.Stock: punto de venta y libro de
// inventario se mantienen como registros separados sin conciliar.
type SaleUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, productRepo: productRepo}
}

// Register registra una venta. Price cero en la petición usa el precio actual
// del producto; el precio efectivo debe ser positivo y la cantidad mayor que cero.
func (uc *SaleUseCase) Register(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	price := in.Price
	if price.IsZero() {
		price = product.Price
	}
	if !price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	sale := &entity.Sale{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Price:     price,
		Total:     price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Date:      time.Now().UTC(),
		VendorID:  in.VendorID,
		Customer:  in.Customer,
	}
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista todas las ventas en orden de inserción.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return items, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		Price:     s.Price,
		Total:     s.Total,
		Date:      s.Date,
		VendorID:  s.VendorID,
		Customer:  s.Customer,
	}
}
