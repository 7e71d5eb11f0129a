package dto

import (
	"fmt"

	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// FormulaItemRequest línea de receta tal como llega del formulario.
type FormulaItemRequest struct {
	InventoryID   string        `json:"inventory_id"`
	InventoryName string        `json:"inventory_name"`
	AmountKg      locale.Number `json:"amount_kg"`
}

// KnitFormulaRequest alta/edición de fórmula de tejido.
type KnitFormulaRequest struct {
	Product          entity.InventoryRef  `json:"product"`
	Formula          []FormulaItemRequest `json:"formula"`
	ProductionWeight locale.Number        `json:"production_weight"`
}

// Validate exige producto, al menos un ingrediente y peso base positivo.
func (r KnitFormulaRequest) Validate() error {
	if r.Product.ID == "" {
		return domain.Invalid("product", "es requerido")
	}
	if len(r.Formula) == 0 {
		return domain.Invalid("formula", "debe tener al menos un ingrediente")
	}
	for i, it := range r.Formula {
		if it.InventoryID == "" {
			return domain.Invalid(fmt.Sprintf("formula[%d].inventory_id", i), "es requerido")
		}
		if it.AmountKg < 0 {
			return domain.Invalid(fmt.Sprintf("formula[%d].amount_kg", i), "no puede ser negativo")
		}
	}
	if r.ProductionWeight <= 0 {
		return domain.Invalid("production_weight", "debe ser mayor a 0")
	}
	return nil
}

// ScaleRequest peso real para escalar una fórmula (número o texto local).
type ScaleRequest struct {
	ActualWeight locale.Number `json:"actual_weight"`
}

// ScaledMaterialResponse ingrediente escalado con su texto para mostrar.
type ScaledMaterialResponse struct {
	InventoryID   string  `json:"inventory_id"`
	InventoryName string  `json:"inventory_name"`
	AmountKg      float64 `json:"amount_kg"`
	AmountDisplay string  `json:"amount_display"`
}

// ScaleResponse resultado del escalado de una fórmula.
type ScaleResponse struct {
	FormulaID        string                   `json:"formula_id"`
	Product          entity.InventoryRef      `json:"product"`
	ProductionWeight float64                  `json:"production_weight"`
	ActualWeight     float64                  `json:"actual_weight"`
	Ratio            float64                  `json:"ratio"`
	Materials        []ScaledMaterialResponse `json:"materials"`
	TotalKg          float64                  `json:"total_kg"`
	TotalDisplay     string                   `json:"total_display"`
}
