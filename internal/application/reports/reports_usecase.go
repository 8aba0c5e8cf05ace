// Package reports contiene la capa de agregación: derivaciones puras y de
// solo lectura sobre el motor de almacenamiento (ventas del día, ingresos,
// actividad reciente, stock bajo). Nunca modifica datos y, ante los mismos
// datos almacenados, siempre produce el mismo resultado.
package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/lockre/lockre-pos/internal/application/dto"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/domain/repository"
)

const dashboardRecentSales = 5 // ventas en el widget de actividad reciente

// ReportsUseCase deriva métricas de negocio desde los puertos de lectura.
// Los errores del almacén se propagan sin reintentos.
type ReportsUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *ReportsUseCase {
	return &ReportsUseCase{saleRepo: saleRepo, productRepo: productRepo, userRepo: userRepo}
}

// SalesOnDate devuelve las ventas cuya fecha calendario (local, sin hora)
// coincide con date, vía consulta por rango sobre el índice date acotada al
// inicio y fin del día.
func (uc *ReportsUseCase) SalesOnDate(ctx context.Context, date time.Time) ([]*entity.Sale, error) {
	from, to := dayBounds(date)
	return uc.saleRepo.GetByDateRange(ctx, from, to)
}

// RevenueForDate suma los totales de las ventas del día. Sin ventas devuelve
// cero, nunca un valor nulo.
func (uc *ReportsUseCase) RevenueForDate(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	sales, err := uc.SalesOnDate(ctx, date)
	if err != nil {
		return decimal.Zero, err
	}
	return sumTotals(sales), nil
}

// RevenueForMonth suma los totales de las ventas con fecha dentro del mes
// [año-mes-01, fin de mes], calculado igual que el ingreso diario pero con un
// rango más amplio.
func (uc *ReportsUseCase) RevenueForMonth(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0).Add(-time.Second)
	sales, err := uc.saleRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return sumTotals(sales), nil
}

// RecentSales devuelve las limit ventas más recientes en orden descendente de
// creación (las ventas siempre se insertan de la más nueva en adelante).
func (uc *ReportsUseCase) RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error) {
	return uc.saleRepo.ListRecent(ctx, limit)
}

// RevenueByVendor suma los totales de las ventas del vendedor dado.
func (uc *ReportsUseCase) RevenueByVendor(ctx context.Context, vendorID int64) (decimal.Decimal, error) {
	sales, err := uc.saleRepo.GetByVendor(ctx, vendorID)
	if err != nil {
		return decimal.Zero, err
	}
	return sumTotals(sales), nil
}

// DistinctCustomerCount cuenta los identificadores de cliente no vacíos
// distintos entre todas las ventas. El campo es texto libre: variantes de
// mayúsculas o espacios cuentan por separado (comportamiento heredado).
func (uc *ReportsUseCase) DistinctCustomerCount(ctx context.Context) (int, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{})
	for _, s := range sales {
		if s.Customer != "" {
			seen[s.Customer] = struct{}{}
		}
	}
	return len(seen), nil
}

// LowStockProducts devuelve los productos con stock menor que threshold,
// ordenados por stock ascendente.
func (uc *ReportsUseCase) LowStockProducts(ctx context.Context, threshold int) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var low []*entity.Product
	for _, p := range products {
		if p.Stock < threshold {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })
	return low, nil
}

// DashboardSummary construye el resumen del tablero: día, mes en curso,
// conteos y actividad reciente. Las consultas independientes corren en
// paralelo.
func (uc *ReportsUseCase) DashboardSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	type todayResult struct {
		sales []*entity.Sale
		err   error
	}
	type monthResult struct {
		revenue decimal.Decimal
		err     error
	}
	type productsResult struct {
		count int
		err   error
	}
	type vendorsResult struct {
		count int
		err   error
	}
	type recentResult struct {
		sales []*entity.Sale
		err   error
	}

	todayCh := make(chan todayResult, 1)
	monthCh := make(chan monthResult, 1)
	productsCh := make(chan productsResult, 1)
	vendorsCh := make(chan vendorsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		sales, err := uc.SalesOnDate(ctx, now)
		todayCh <- todayResult{sales, err}
	}()
	go func() {
		revenue, err := uc.RevenueForMonth(ctx, now.Year(), now.Month())
		monthCh <- monthResult{revenue, err}
	}()
	go func() {
		products, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{len(products), err}
	}()
	go func() {
		vendors, err := uc.userRepo.ListByRole(ctx, entity.RoleVendor)
		vendorsCh <- vendorsResult{len(vendors), err}
	}()
	go func() {
		sales, err := uc.saleRepo.ListRecent(ctx, dashboardRecentSales)
		recentCh <- recentResult{sales, err}
	}()

	today := <-todayCh
	month := <-monthCh
	products := <-productsCh
	vendors := <-vendorsCh
	recent := <-recentCh

	if today.err != nil {
		return nil, fmt.Errorf("tablero: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("tablero: ingresos del mes: %w", month.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("tablero: productos: %w", products.err)
	}
	if vendors.err != nil {
		return nil, fmt.Errorf("tablero: vendedores: %w", vendors.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("tablero: actividad reciente: %w", recent.err)
	}

	recentDTOs := make([]dto.SaleResponse, 0, len(recent.sales))
	for _, s := range recent.sales {
		recentDTOs = append(recentDTOs, dto.SaleResponse{
			ID:        s.ID,
			ProductID: s.ProductID,
			Quantity:  s.Quantity,
			Price:     s.Price,
			Total:     s.Total,
			Date:      s.Date,
			VendorID:  s.VendorID,
			Customer:  s.Customer,
		})
	}

	return &dto.DashboardSummaryDTO{
		TodayRevenue: sumTotals(today.sales),
		TodaySales:   len(today.sales),
		MonthRevenue: month.revenue,
		ProductCount: products.count,
		VendorCount:  vendors.count,
		RecentSales:  recentDTOs,
	}, nil
}

// dayBounds devuelve el inicio y fin inclusivo del día calendario local de t.
// El fin es 23:59:59: el índice date guarda precisión de segundos.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Second)
	return start, end
}

func sumTotals(sales []*entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return total
}
