package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen del tablero: métricas del día y del mes en curso
// más la actividad reciente.
type DashboardSummaryDTO struct {
	TodayRevenue decimal.Decimal
	TodaySales   int
	MonthRevenue decimal.Decimal
	ProductCount int
	VendorCount  int
	RecentSales  []SaleResponse
}
