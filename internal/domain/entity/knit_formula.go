package entity

import "time"

// FormulaItem una línea de ingrediente de la receta. AmountKg es no negativo.
type FormulaItem struct {
	InventoryID   string  `json:"inventory_id"`
	InventoryName string  `json:"inventory_name"`
	AmountKg      float64 `json:"amount_kg"`
}

// KnitFormula receta: cantidades de Formula necesarias para producir ProductionWeight kg de Product.
// Solo es escalable cuando ProductionWeight > 0.
type KnitFormula struct {
	ID               string        `json:"id"`
	Product          InventoryRef  `json:"product"`
	Formula          []FormulaItem `json:"formula"`
	ProductionWeight float64       `json:"production_weight"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
