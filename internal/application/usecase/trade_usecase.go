package usecase

import (
	"context"
	"slices"

	"github.com/samber/lo"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/internal/domain/trade"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// PreparePurchase recalcula subtotales y total; los valores enviados por el navegador se ignoran.
func PreparePurchase(_ context.Context, _ *entity.Session, in *dto.PurchaseRequest) error {
	in.Items, in.Total = applyTotals(in.Items)
	return nil
}

// PrepareSale igual que PreparePurchase para ventas.
func PrepareSale(_ context.Context, _ *entity.Session, in *dto.SaleRequest) error {
	in.Items, in.Total = applyTotals(in.Items)
	return nil
}

// applyTotals devuelve una copia de las líneas con Subtotal calculado y el total.
func applyTotals(items []dto.TradeLineRequest) ([]dto.TradeLineRequest, locale.Decimal) {
	lines := lo.Map(items, func(l dto.TradeLineRequest, _ int) trade.Line {
		return trade.Line{Quantity: l.QuantityKg.Decimal, Price: l.PricePerKg.Decimal}
	})
	subtotals, total := trade.Totals(lines)
	out := slices.Clone(items)
	for i := range out {
		out[i].Subtotal = locale.NewDecimal(subtotals[i])
	}
	return out, locale.NewDecimal(total)
}
