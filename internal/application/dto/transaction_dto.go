package dto

import (
	"fmt"

	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// TradeLineRequest línea de compra/venta. Subtotal lo calcula el BFF.
type TradeLineRequest struct {
	InventoryID   string         `json:"inventory_id"`
	InventoryName string         `json:"inventory_name"`
	QuantityKg    locale.Decimal `json:"quantity_kg"`
	PricePerKg    locale.Decimal `json:"price_per_kg"`
	Subtotal      locale.Decimal `json:"subtotal"`
}

func validateLines(lines []TradeLineRequest) error {
	if len(lines) == 0 {
		return domain.Invalid("items", "debe tener al menos una línea")
	}
	for i, l := range lines {
		if l.InventoryID == "" {
			return domain.Invalid(fmt.Sprintf("items[%d].inventory_id", i), "es requerido")
		}
		if !l.QuantityKg.IsPositive() {
			return domain.Invalid(fmt.Sprintf("items[%d].quantity_kg", i), "debe ser mayor a 0")
		}
		if l.PricePerKg.IsNegative() {
			return domain.Invalid(fmt.Sprintf("items[%d].price_per_kg", i), "no puede ser negativo")
		}
	}
	return nil
}

// PurchaseRequest alta/edición de compra.
type PurchaseRequest struct {
	Date          string             `json:"date"`
	Supplier      entity.PartnerRef  `json:"supplier"`
	InvoiceNumber string             `json:"invoice_number"`
	Items         []TradeLineRequest `json:"items"`
	Total         locale.Decimal     `json:"total"`
	Notes         string             `json:"notes"`
}

// Validate verifica fecha, proveedor y líneas.
func (r PurchaseRequest) Validate() error {
	if err := validDate("date", r.Date, true); err != nil {
		return err
	}
	if r.Supplier.ID == "" {
		return domain.Invalid("supplier", "es requerido")
	}
	return validateLines(r.Items)
}

// SaleRequest alta/edición de venta.
type SaleRequest struct {
	Date          string             `json:"date"`
	DueDate       string             `json:"due_date"`
	Buyer         entity.PartnerRef  `json:"buyer"`
	InvoiceNumber string             `json:"invoice_number"`
	Items         []TradeLineRequest `json:"items"`
	Total         locale.Decimal     `json:"total"`
	Notes         string             `json:"notes"`
}

// Validate verifica fechas, comprador y líneas.
func (r SaleRequest) Validate() error {
	if err := validDate("date", r.Date, true); err != nil {
		return err
	}
	if err := validDate("due_date", r.DueDate, false); err != nil {
		return err
	}
	if r.DueDate != "" && r.DueDate < r.Date {
		return domain.Invalid("due_date", "no puede ser anterior a la fecha de venta")
	}
	if r.Buyer.ID == "" {
		return domain.Invalid("buyer", "es requerido")
	}
	return validateLines(r.Items)
}
