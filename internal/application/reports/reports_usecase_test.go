package reports

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/internal/infrastructure/sqlite"
)

type reportsFixture struct {
	uc       *ReportsUseCase
	sales    *sqlite.SaleRepo
	products *sqlite.ProductRepo
	users    *sqlite.UserRepo
}

func newReportsFixture(t *testing.T) *reportsFixture {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "lockre.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	f := &reportsFixture{
		sales:    sqlite.NewSaleRepository(store),
		products: sqlite.NewProductRepository(store),
		users:    sqlite.NewUserRepository(store),
	}
	f.uc = NewReportsUseCase(f.sales, f.products, f.users)
	return f
}

func (f *reportsFixture) seedSale(t *testing.T, date time.Time, total int64, vendorID int64, customer string) {
	t.Helper()
	price := decimal.NewFromInt(total)
	require.NoError(t, f.sales.Create(context.Background(), &entity.Sale{
		ProductID: 1,
		Quantity:  1,
		Price:     price,
		Total:     price,
		Date:      date,
		VendorID:  vendorID,
		Customer:  customer,
	}))
}

// TestRevenueForDate_LimitesDelDia: una venta a las 23:59:59 cuenta para su
// día; una a las 00:00:00 siguientes cuenta para el día siguiente.
func TestRevenueForDate_LimitesDelDia(t *testing.T) {
	f := newReportsFixture(t)
	ctx := context.Background()

	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)
	f.seedSale(t, day.Add(23*time.Hour+59*time.Minute+59*time.Second), 500, 1, "")
	f.seedSale(t, day.AddDate(0, 0, 1), 700, 1, "")

	revenue, err := f.uc.RevenueForDate(ctx, day)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(500).Equal(revenue), "ingresos del 14: %s", revenue)

	revenue, err = f.uc.RevenueForDate(ctx, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(700).Equal(revenue), "ingresos del 15: %s", revenue)

	sales, err := f.uc.SalesOnDate(ctx, day)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestRevenueForDate_SinVentas(t *testing.T) {
	f := newReportsFixture(t)

	revenue, err := f.uc.RevenueForDate(context.Background(), time.Now())
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())
}

// TestRevenueForMonth_Consistencia: el ingreso del mes es la suma de los
// ingresos diarios de ese mes y excluye los meses vecinos.
func TestRevenueForMonth_Consistencia(t *testing.T) {
	f := newReportsFixture(t)
	ctx := context.Background()

	f.seedSale(t, time.Date(2026, time.March, 1, 9, 0, 0, 0, time.Local), 1000, 1, "")
	f.seedSale(t, time.Date(2026, time.March, 14, 12, 30, 0, 0, time.Local), 250, 1, "")
	f.seedSale(t, time.Date(2026, time.March, 31, 23, 59, 59, 0, time.Local), 750, 1, "")
	// Fuera del mes.
	f.seedSale(t, time.Date(2026, time.February, 28, 10, 0, 0, 0, time.Local), 9999, 1, "")
	f.seedSale(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local), 9999, 1, "")

	month, err := f.uc.RevenueForMonth(ctx, 2026, time.March)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2000).Equal(month), "ingresos de marzo: %s", month)

	sum := decimal.Zero
	for day := 1; day <= 31; day++ {
		daily, err := f.uc.RevenueForDate(ctx, time.Date(2026, time.March, day, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)
		sum = sum.Add(daily)
	}
	assert.True(t, month.Equal(sum), "mes %s != suma diaria %s", month, sum)
}

// TestRecentSales_OrdenDescendente comprueba el orden y el límite de la
// actividad reciente.
func TestRecentSales_OrdenDescendente(t *testing.T) {
	f := newReportsFixture(t)
	ctx := context.Background()

	base := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		f.seedSale(t, base.Add(time.Duration(i)*time.Minute), int64(100+i), 1, "")
	}

	recent, err := f.uc.RecentSales(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	// La más nueva primero.
	assert.True(t, decimal.NewFromInt(106).Equal(recent[0].Total))
	for i := 1; i < len(recent); i++ {
		assert.Greater(t, recent[i-1].ID, recent[i].ID)
	}
}

func TestRevenueByVendor(t *testing.T) {
	f := newReportsFixture(t)
	ctx := context.Background()

	day := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.Local)
	f.seedSale(t, day, 300, 7, "")
	f.seedSale(t, day, 450, 7, "")
	f.seedSale(t, day, 999, 8, "")

	revenue, err := f.uc.RevenueByVendor(ctx, 7)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(750).Equal(revenue))

	revenue, err = f.uc.RevenueByVendor(ctx, 99)
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())
}

// TestDistinctCustomerCount: el conteo es por cadena exacta y no vacía.
func TestDistinctCustomerCount(t *testing.T) {
	f := newReportsFixture(t)
	ctx := context.Background()

	count, err := f.uc.DistinctCustomerCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	day := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.Local)
	f.seedSale(t, day, 100, 1, "Fatou")
	f.seedSale(t, day, 100, 1, "Fatou")
	f.seedSale(t, day, 100, 1, "Moussa")
	f.seedSale(t, day, 100, 1, "")

	count, err = f.uc.DistinctCustomerCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// TestLowStockProducts: sólo los productos bajo el umbral, ordenados por stock
// ascendente.
func TestLowStockProducts(t *testing.T) {
	f := newReportsFixture(t)
	ctx := context.Background()

	seed := []struct {
		name    string
		barcode string
		stock   int
	}{
		{"Riz 1kg", "RIZ-001", 2},
		{"Huile 1L", "HUI-001", 8},
		{"Savon", "SAV-001", 0},
		{"Sucre", "SUC-001", 20},
	}
	for _, p := range seed {
		require.NoError(t, f.products.Create(ctx, &entity.Product{
			Name: p.name, Price: decimal.NewFromInt(100), Stock: p.stock, Barcode: p.barcode,
		}))
	}

	low, err := f.uc.LowStockProducts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, low, 3)
	assert.Equal(t, "Savon", low[0].Name)
	assert.Equal(t, "Riz 1kg", low[1].Name)
	assert.Equal(t, "Huile 1L", low[2].Name)
}

// TestDashboardSummary arma el resumen completo sobre datos de hoy.
func TestDashboardSummary(t *testing.T) {
	f := newReportsFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Create(ctx, &entity.User{
		Username: "admin", Role: entity.RoleAdmin, PasswordHash: "h", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, f.users.Create(ctx, &entity.User{
		Username: "awa", Role: entity.RoleVendor, PasswordHash: "h", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, f.products.Create(ctx, &entity.Product{
		Name: "Riz 1kg", Price: decimal.NewFromInt(1000), Stock: 50, Barcode: "RIZ-001",
	}))

	now := time.Now()
	f.seedSale(t, now, 1000, 2, "Fatou")
	f.seedSale(t, now.AddDate(0, 0, -40), 5555, 2, "") // fuera del día y del mes

	summary, err := f.uc.DashboardSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TodaySales)
	assert.True(t, decimal.NewFromInt(1000).Equal(summary.TodayRevenue))
	assert.True(t, decimal.NewFromInt(1000).Equal(summary.MonthRevenue))
	assert.Equal(t, 1, summary.ProductCount)
	assert.Equal(t, 1, summary.VendorCount, "sólo los vendedores cuentan, no el admin")
	require.NotEmpty(t, summary.RecentSales)
	assert.LessOrEqual(t, len(summary.RecentSales), 5)
}
