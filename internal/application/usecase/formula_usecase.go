package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/internal/domain/formula"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// KnitFormulaPath ruta de las fórmulas de tejido en el backend.
const KnitFormulaPath = "/knit-formulas"

// displayDigits dígitos fraccionarios al mostrar kilos escalados.
var displayDigits = locale.MaxFractionDigits(2)

// FormulaUseCase escalado de fórmulas, hoja de producción y materiales de los registros de tejido.
type FormulaUseCase struct {
	backend ports.BackendAPI
	sheets  ports.ProductionSheetGenerator
	now     func() time.Time
}

// NewFormulaUseCase construye el caso de uso.
func NewFormulaUseCase(backend ports.BackendAPI, sheets ports.ProductionSheetGenerator) *FormulaUseCase {
	return &FormulaUseCase{backend: backend, sheets: sheets, now: time.Now}
}

// Scale obtiene la fórmula y la escala al peso real. Sin peso real devuelve la receta base.
func (uc *FormulaUseCase) Scale(ctx context.Context, sess *entity.Session, id string, actualWeight float64) (*dto.ScaleResponse, error) {
	f, err := uc.formula(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	materials := formula.ScaleFormula(f, actualWeight)
	total := formula.TotalKg(materials)
	return &dto.ScaleResponse{
		FormulaID:        f.ID,
		Product:          f.Product,
		ProductionWeight: f.ProductionWeight,
		ActualWeight:     actualWeight,
		Ratio:            formula.Ratio(f.ProductionWeight, actualWeight),
		Materials: lo.Map(materials, func(m entity.FormulaItem, _ int) dto.ScaledMaterialResponse {
			return dto.ScaledMaterialResponse{
				InventoryID:   m.InventoryID,
				InventoryName: m.InventoryName,
				AmountKg:      m.AmountKg,
				AmountDisplay: locale.Format(m.AmountKg, displayDigits),
			}
		}),
		TotalKg:      total,
		TotalDisplay: locale.Format(total, displayDigits),
	}, nil
}

// ProductionSheet genera el PDF con la fórmula escalada al peso indicado.
func (uc *FormulaUseCase) ProductionSheet(ctx context.Context, sess *entity.Session, id string, actualWeight float64) ([]byte, error) {
	if !(actualWeight > 0) {
		return nil, domain.Invalid("weight", "debe ser mayor a 0")
	}
	f, err := uc.formula(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if !(f.ProductionWeight > 0) {
		return nil, domain.Invalid("production_weight", "la fórmula no tiene peso base")
	}
	return uc.sheets.GenerateProductionSheet(ctx, ports.ProductionSheet{
		Formula:      f,
		ActualWeight: actualWeight,
		Ratio:        formula.Ratio(f.ProductionWeight, actualWeight),
		Materials:    formula.ScaleFormula(f, actualWeight),
		GeneratedBy:  sess.UserName,
		GeneratedAt:  uc.now(),
	})
}

// PrepareKnittingLog calcula los materiales del registro escalando la fórmula al peso producido.
func (uc *FormulaUseCase) PrepareKnittingLog(ctx context.Context, sess *entity.Session, in *dto.KnittingLogRequest) error {
	f, err := uc.formula(ctx, sess, in.KnitFormulaID)
	if err != nil {
		return err
	}
	if !(f.ProductionWeight > 0) {
		return domain.Invalid("knit_formula_id", "la fórmula no tiene peso base")
	}
	if in.Product.ID == "" {
		in.Product = f.Product
	}
	in.Materials = formula.ScaleFormula(f, in.ProductionWeight.Float64())
	return nil
}

func (uc *FormulaUseCase) formula(ctx context.Context, sess *entity.Session, id string) (*entity.KnitFormula, error) {
	path, err := itemPath(KnitFormulaPath, id)
	if err != nil {
		return nil, err
	}
	var f entity.KnitFormula
	if err := uc.backend.Get(ctx, sess, path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
