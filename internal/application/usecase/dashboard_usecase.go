package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
)

// DashboardLimit cantidad de registros por bloque del dashboard.
const DashboardLimit = 5

// DashboardUseCase arma la pantalla de inicio consultando varios recursos en paralelo.
type DashboardUseCase struct {
	backend ports.BackendAPI
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(backend ports.BackendAPI) *DashboardUseCase {
	return &DashboardUseCase{backend: backend}
}

// Get consulta ventas recientes, tejido reciente, stock bajo y cuentas de alto riesgo.
// El primer error cancela las demás consultas.
func (uc *DashboardUseCase) Get(ctx context.Context, sess *entity.Session) (*dto.DashboardResponse, error) {
	out := &dto.DashboardResponse{
		RecentSales:        []entity.Sale{},
		RecentKnittingLogs: []entity.KnittingLog{},
		LowStock:           []entity.InventoryItem{},
		HighRiskReceivable: []entity.Receivable{},
	}
	g, ctx := errgroup.WithContext(ctx)
	fetch := func(path string, filters map[string]string, dst any, count *int) {
		g.Go(func() error {
			q := ports.ListQuery{Page: 1, Limit: DashboardLimit, Filters: filters}
			meta, err := uc.backend.List(ctx, sess, path, q, dst)
			if err != nil {
				return err
			}
			if meta != nil {
				*count = meta.Total
			}
			return nil
		})
	}
	fetch(SalePath, nil, &out.RecentSales, &out.Counts.Sales)
	fetch(KnittingLogPath, nil, &out.RecentKnittingLogs, &out.Counts.KnittingLogs)
	fetch(InventoryPath, map[string]string{"low_stock": "true"}, &out.LowStock, &out.Counts.LowStock)
	fetch(ReceivablePath, map[string]string{"risk": RiskHigh}, &out.HighRiskReceivable, &out.Counts.HighRiskReceivable)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
