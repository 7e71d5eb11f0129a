package ports

import (
	"context"
	"time"

	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
)

// Sheet hoja de cálculo plana: encabezados y filas de valores.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// SpreadsheetExporter genera un archivo .xlsx.
type SpreadsheetExporter interface {
	Export(sheet Sheet) ([]byte, error)
}

// ProductionSheet datos de la hoja de producción de una fórmula escalada.
type ProductionSheet struct {
	Formula      *entity.KnitFormula
	ActualWeight float64
	Ratio        float64
	Materials    []entity.FormulaItem
	GeneratedBy  string
	GeneratedAt  time.Time
}

// ProductionSheetGenerator genera el PDF de la hoja de producción.
type ProductionSheetGenerator interface {
	GenerateProductionSheet(ctx context.Context, data ProductionSheet) ([]byte, error)
}
