package entity

// KnittingLog registro de producción de tejido. Materials es la fórmula escalada al peso producido.
type KnittingLog struct {
	ID               string        `json:"id"`
	Date             string        `json:"date"`
	Machine          Ref           `json:"machine"`
	Operator         Ref           `json:"operator"`
	KnitFormulaID    string        `json:"knit_formula_id"`
	Product          InventoryRef  `json:"product"`
	ProductionWeight float64       `json:"production_weight"`
	Shift            string        `json:"shift"`
	Materials        []FormulaItem `json:"materials"`
	Notes            string        `json:"notes"`
}

// DyeingLog registro de teñido.
type DyeingLog struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	Machine      Ref          `json:"machine"`
	Operator     Ref          `json:"operator"`
	Fabric       InventoryRef `json:"fabric"`
	Color        string       `json:"color"`
	InputWeight  float64      `json:"input_weight"`
	OutputWeight float64      `json:"output_weight"`
	Notes        string       `json:"notes"`
}
