package entity

import "github.com/shopspring/decimal"

// Receivable cuenta por cobrar de una venta. AgingDays y Risk los calcula el backend.
type Receivable struct {
	ID            string          `json:"id"`
	SaleID        string          `json:"sale_id"`
	Buyer         PartnerRef      `json:"buyer"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          decimal.Decimal `json:"paid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"` // open | partial | paid
	AgingDays     int             `json:"aging_days"`
	Risk          string          `json:"risk"` // low | medium | high
}

// Payment abono registrado contra una cuenta por cobrar.
type Payment struct {
	ID     string          `json:"id,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Note   string          `json:"note"`
}
