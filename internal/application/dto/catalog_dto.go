package dto

import (
	"slices"

	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// InventoryRequest alta/edición de material.
type InventoryRequest struct {
	Code       string         `json:"code"`
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	Unit       string         `json:"unit"`
	MinStockKg locale.Number  `json:"min_stock_kg"`
	Price      locale.Decimal `json:"price"`
}

// Validate verifica campos obligatorios y categoría.
func (r InventoryRequest) Validate() error {
	if err := required("name", r.Name); err != nil {
		return err
	}
	if !slices.Contains(entity.InventoryCategories, r.Category) {
		return domain.Invalid("category", "categoría desconocida")
	}
	if r.MinStockKg < 0 {
		return domain.Invalid("min_stock_kg", "no puede ser negativo")
	}
	if r.Price.IsNegative() {
		return domain.Invalid("price", "no puede ser negativo")
	}
	return nil
}

// BuyerRequest alta/edición de comprador.
type BuyerRequest struct {
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	TaxNumber   string         `json:"tax_number"`
	CreditLimit locale.Decimal `json:"credit_limit"`
}

// Validate verifica nombre y límite de crédito.
func (r BuyerRequest) Validate() error {
	if err := required("name", r.Name); err != nil {
		return err
	}
	if r.CreditLimit.IsNegative() {
		return domain.Invalid("credit_limit", "no puede ser negativo")
	}
	return nil
}

// SupplierRequest alta/edición de proveedor.
type SupplierRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	TaxNumber string `json:"tax_number"`
}

// Validate verifica el nombre.
func (r SupplierRequest) Validate() error {
	return required("name", r.Name)
}

// MachineRequest alta/edición de máquina.
type MachineRequest struct {
	Code     string        `json:"code"`
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Gauge    int           `json:"gauge"`
	Diameter locale.Number `json:"diameter"`
	Status   string        `json:"status"`
}

// Validate verifica tipo y estado.
func (r MachineRequest) Validate() error {
	if err := required("name", r.Name); err != nil {
		return err
	}
	if r.Type != entity.MachineKnitting && r.Type != entity.MachineDyeing {
		return domain.Invalid("type", "debe ser knitting o dyeing")
	}
	switch r.Status {
	case "", entity.MachineActive, entity.MachineMaintenance, entity.MachineIdle:
	default:
		return domain.Invalid("status", "estado desconocido")
	}
	return nil
}

// OperatorRequest alta/edición de operario.
type OperatorRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Shift  string `json:"shift"`
	Active bool   `json:"active"`
}

// Validate verifica el nombre.
func (r OperatorRequest) Validate() error {
	return required("name", r.Name)
}
