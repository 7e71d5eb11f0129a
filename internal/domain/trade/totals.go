// Package trade calcula subtotales y totales de compras y ventas.
package trade

import "github.com/shopspring/decimal"

// MoneyPlaces decimales a los que se redondean subtotales y totales.
const MoneyPlaces = 2

// Line cantidad y precio unitario de una línea de compra o venta.
type Line struct {
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// LineSubtotal = cantidad × precio, redondeado a MoneyPlaces.
func LineSubtotal(quantity, price decimal.Decimal) decimal.Decimal {
	return quantity.Mul(price).Round(MoneyPlaces)
}

// Totals devuelve el subtotal de cada línea (mismo orden) y la suma de todos.
func Totals(lines []Line) ([]decimal.Decimal, decimal.Decimal) {
	subtotals := make([]decimal.Decimal, len(lines))
	total := decimal.Zero
	for i, l := range lines {
		subtotals[i] = LineSubtotal(l.Quantity, l.Price)
		total = total.Add(subtotals[i])
	}
	return subtotals, total
}

// Sum suma montos; sin valores devuelve cero.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
