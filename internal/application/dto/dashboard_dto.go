package dto

import "github.com/jhoicas/textile-backoffice/internal/domain/entity"

// DashboardResponse resumen de la pantalla de inicio.
type DashboardResponse struct {
	RecentSales        []entity.Sale          `json:"recent_sales"`
	RecentKnittingLogs []entity.KnittingLog   `json:"recent_knitting_logs"`
	LowStock           []entity.InventoryItem `json:"low_stock"`
	HighRiskReceivable []entity.Receivable    `json:"high_risk_receivables"`
	Counts             DashboardCounts        `json:"counts"`
}

// DashboardCounts totales informados por el backend en cada listado.
type DashboardCounts struct {
	Sales              int `json:"sales"`
	KnittingLogs       int `json:"knitting_logs"`
	LowStock           int `json:"low_stock"`
	HighRiskReceivable int `json:"high_risk_receivables"`
}
