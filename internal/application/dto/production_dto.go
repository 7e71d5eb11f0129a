package dto

import (
	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// KnittingLogRequest registro de producción de tejido. Materials lo calcula el BFF a partir de la
// fórmula; lo que envíe el navegador se descarta.
type KnittingLogRequest struct {
	Date             string               `json:"date"`
	Machine          entity.Ref           `json:"machine"`
	Operator         entity.Ref           `json:"operator"`
	KnitFormulaID    string               `json:"knit_formula_id"`
	Product          entity.InventoryRef  `json:"product"`
	ProductionWeight locale.Number        `json:"production_weight"`
	Shift            string               `json:"shift"`
	Materials        []entity.FormulaItem `json:"materials"`
	Notes            string               `json:"notes"`
}

// Validate verifica fecha, máquina, fórmula y peso.
func (r KnittingLogRequest) Validate() error {
	if err := validDate("date", r.Date, true); err != nil {
		return err
	}
	if r.Machine.ID == "" {
		return domain.Invalid("machine", "es requerido")
	}
	if r.KnitFormulaID == "" {
		return domain.Invalid("knit_formula_id", "es requerido")
	}
	if r.ProductionWeight <= 0 {
		return domain.Invalid("production_weight", "debe ser mayor a 0")
	}
	return nil
}

// DyeingLogRequest registro de teñido.
type DyeingLogRequest struct {
	Date         string              `json:"date"`
	Machine      entity.Ref          `json:"machine"`
	Operator     entity.Ref          `json:"operator"`
	Fabric       entity.InventoryRef `json:"fabric"`
	Color        string              `json:"color"`
	InputWeight  locale.Number       `json:"input_weight"`
	OutputWeight locale.Number       `json:"output_weight"`
	Notes        string              `json:"notes"`
}

// Validate verifica fecha, máquina, tela y pesos.
func (r DyeingLogRequest) Validate() error {
	if err := validDate("date", r.Date, true); err != nil {
		return err
	}
	if r.Machine.ID == "" {
		return domain.Invalid("machine", "es requerido")
	}
	if r.Fabric.ID == "" {
		return domain.Invalid("fabric", "es requerido")
	}
	if r.InputWeight <= 0 {
		return domain.Invalid("input_weight", "debe ser mayor a 0")
	}
	if r.OutputWeight < 0 {
		return domain.Invalid("output_weight", "no puede ser negativo")
	}
	return nil
}
