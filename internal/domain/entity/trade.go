package entity

import "github.com/shopspring/decimal"

// TradeLine línea de compra o venta. Subtotal = QuantityKg × PricePerKg.
type TradeLine struct {
	InventoryID   string          `json:"inventory_id"`
	InventoryName string          `json:"inventory_name"`
	QuantityKg    decimal.Decimal `json:"quantity_kg"`
	PricePerKg    decimal.Decimal `json:"price_per_kg"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// Purchase compra de hilo/químicos a un proveedor.
type Purchase struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Supplier      PartnerRef      `json:"supplier"`
	InvoiceNumber string          `json:"invoice_number"`
	Items         []TradeLine     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes"`
}

// Sale venta de tela a un comprador. El backend genera la cuenta por cobrar.
type Sale struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	DueDate       string          `json:"due_date"`
	Buyer         PartnerRef      `json:"buyer"`
	InvoiceNumber string          `json:"invoice_number"`
	Items         []TradeLine     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes"`
}
