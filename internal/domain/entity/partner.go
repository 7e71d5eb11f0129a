package entity

import "github.com/shopspring/decimal"

// Buyer cliente que compra tela.
type Buyer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	TaxNumber   string          `json:"tax_number"` // NPWP
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// Supplier proveedor de hilo y químicos.
type Supplier struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	TaxNumber string `json:"tax_number"`
}

// PartnerRef referencia ligera a comprador o proveedor.
type PartnerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
