package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/internal/domain/trade"
)

// ReceivablePath ruta de cuentas por cobrar en el backend.
const ReceivablePath = "/receivables"

// RiskHigh nivel de riesgo que marca el backend para cuentas vencidas.
const RiskHigh = "high"

// ReceivableFilters filtros aceptados en el listado.
var ReceivableFilters = []string{"buyer_id", "status", "risk"}

// ReceivableUseCase consulta de cuentas por cobrar y registro de abonos.
// Antigüedad y riesgo los calcula el backend.
type ReceivableUseCase struct {
	backend ports.BackendAPI
}

// NewReceivableUseCase construye el caso de uso.
func NewReceivableUseCase(backend ports.BackendAPI) *ReceivableUseCase {
	return &ReceivableUseCase{backend: backend}
}

// List lista cuentas por cobrar y resume los montos de la página.
func (uc *ReceivableUseCase) List(ctx context.Context, sess *entity.Session, q ports.ListQuery) (*dto.ReceivableListResponse, error) {
	q = NormalizeQuery(q)
	q.Filters = lo.PickByKeys(q.Filters, ReceivableFilters)
	items := []entity.Receivable{}
	meta, err := uc.backend.List(ctx, sess, ReceivablePath, q, &items)
	if err != nil {
		return nil, err
	}
	return &dto.ReceivableListResponse{
		Items:   items,
		Page:    pageFrom(meta, q, len(items)),
		Summary: Summarize(items),
	}, nil
}

// Summarize totales de monto, pagado y saldo, y cantidad de cuentas de alto riesgo.
func Summarize(items []entity.Receivable) dto.ReceivableSummary {
	return dto.ReceivableSummary{
		TotalAmount:      trade.Sum(lo.Map(items, func(r entity.Receivable, _ int) decimal.Decimal { return r.Amount })...),
		TotalPaid:        trade.Sum(lo.Map(items, func(r entity.Receivable, _ int) decimal.Decimal { return r.Paid })...),
		TotalOutstanding: trade.Sum(lo.Map(items, func(r entity.Receivable, _ int) decimal.Decimal { return r.Outstanding })...),
		HighRisk:         lo.CountBy(items, func(r entity.Receivable) bool { return r.Risk == RiskHigh }),
	}
}

// Get obtiene una cuenta por cobrar.
func (uc *ReceivableUseCase) Get(ctx context.Context, sess *entity.Session, id string) (*entity.Receivable, error) {
	path, err := itemPath(ReceivablePath, id)
	if err != nil {
		return nil, err
	}
	var out entity.Receivable
	if err := uc.backend.Get(ctx, sess, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordPayment registra un abono. El monto debe ser positivo y no superar el saldo pendiente.
func (uc *ReceivableUseCase) RecordPayment(ctx context.Context, sess *entity.Session, id string, in dto.PaymentRequest) (*entity.Receivable, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	current, err := uc.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if in.Amount.GreaterThan(current.Outstanding) {
		return nil, domain.Invalid("amount", "supera el saldo pendiente")
	}
	payment := entity.Payment{
		Amount: in.Amount.Round(trade.MoneyPlaces),
		Date:   in.Date,
		Note:   in.Note,
	}
	var out entity.Receivable
	path, _ := itemPath(ReceivablePath, id)
	if err := uc.backend.Create(ctx, sess, path+"/payments", payment, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
