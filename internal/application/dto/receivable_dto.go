package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// PaymentRequest abono a una cuenta por cobrar.
type PaymentRequest struct {
	Amount locale.Decimal `json:"amount"`
	Date   string         `json:"date"`
	Note   string         `json:"note"`
}

// Validate exige monto positivo y fecha válida.
func (r PaymentRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return domain.Invalid("amount", "debe ser mayor a 0")
	}
	return validDate("date", r.Date, true)
}

// ReceivableSummary totales de la página listada.
type ReceivableSummary struct {
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	HighRisk         int             `json:"high_risk"`
}

// ReceivableListResponse lista paginada con resumen.
type ReceivableListResponse struct {
	Items   []entity.Receivable `json:"items"`
	Page    PageResponse        `json:"page"`
	Summary ReceivableSummary   `json:"summary"`
}
