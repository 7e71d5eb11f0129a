// Package formula escala recetas de tejido al peso real de producción.
package formula

import (
	"github.com/samber/lo"

	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
)

// Scale devuelve una copia de items con cada AmountKg multiplicado por actualWeight/baseWeight.
//
//   - items nil o baseWeight no positivo: lista vacía (no hay escala posible).
//   - actualWeight no positivo: la receta base sin escalar, para que el usuario la vea antes de
//     ingresar un peso.
//
// No redondea ni modifica items; el redondeo ocurre solo al mostrar.
func Scale(items []entity.FormulaItem, baseWeight, actualWeight float64) []entity.FormulaItem {
	if items == nil || !(baseWeight > 0) {
		return []entity.FormulaItem{}
	}
	if !(actualWeight > 0) {
		return lo.Map(items, func(it entity.FormulaItem, _ int) entity.FormulaItem { return it })
	}
	ratio := actualWeight / baseWeight
	return lo.Map(items, func(it entity.FormulaItem, _ int) entity.FormulaItem {
		return entity.FormulaItem{
			InventoryID:   it.InventoryID,
			InventoryName: it.InventoryName,
			AmountKg:      it.AmountKg * ratio,
		}
	})
}

// ScaleFormula aplica Scale sobre una KnitFormula; nil devuelve lista vacía.
func ScaleFormula(f *entity.KnitFormula, actualWeight float64) []entity.FormulaItem {
	if f == nil {
		return []entity.FormulaItem{}
	}
	return Scale(f.Formula, f.ProductionWeight, actualWeight)
}

// Ratio es el factor que aplica Scale: 0 si la base no es usable, 1 si aún no hay peso real.
func Ratio(baseWeight, actualWeight float64) float64 {
	if !(baseWeight > 0) {
		return 0
	}
	if !(actualWeight > 0) {
		return 1
	}
	return actualWeight / baseWeight
}

// TotalKg suma AmountKg de todas las líneas.
func TotalKg(items []entity.FormulaItem) float64 {
	return lo.SumBy(items, func(it entity.FormulaItem) float64 { return it.AmountKg })
}
