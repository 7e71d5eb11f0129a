// Package pdf genera la hoja de producción de tejido: la fórmula escalada al peso real que se
// entrega al operario junto a la máquina.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + Fórmula       │  Fecha + Generado por    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PESOS: Peso base | Peso real | Factor                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Material | Base (kg) | A pesar (kg)                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                     │
//	│  FOOTER: QR de la fórmula + firmas                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/domain/formula"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ ports.ProductionSheetGenerator = (*MarotoPDFGenerator)(nil)

// kg formatea kilos con 2 decimales como máximo.
func kg(v float64) string {
	return locale.Format(v, locale.MaxFractionDigits(2))
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ProductionSheetGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	loc *time.Location
}

// NewMarotoPDFGenerator construye el generador. Las fechas se imprimen en loc (nil = UTC).
func NewMarotoPDFGenerator(loc *time.Location) *MarotoPDFGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoPDFGenerator{loc: loc}
}

// GenerateProductionSheet genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateProductionSheet(_ context.Context, data ports.ProductionSheet) ([]byte, error) {
	if data.Formula == nil {
		return nil, fmt.Errorf("pdf: hoja de producción sin fórmula")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de producción - "+data.Formula.Product.Name, true).
		WithAuthor(nonEmpty(data.GeneratedBy, "textile-backoffice"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data, g.loc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(weightsRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(data)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto + id de fórmula (izq) y fecha + usuario (der).
func headerRow(data ports.ProductionSheet, loc *time.Location) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Formula.Product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Fórmula: "+data.Formula.ID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("HOJA DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+data.GeneratedAt.In(loc).Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Generado por: "+nonEmpty(data.GeneratedBy, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// weightsRow: peso base de la receta, peso real a producir y factor aplicado.
func weightsRow(data ports.ProductionSheet) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Size: 11, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("PESO BASE", kg(data.Formula.ProductionWeight)+" kg"),
		cell("PESO REAL", kg(data.ActualWeight)+" kg"),
		cell("FACTOR", locale.Format(data.Ratio, locale.MaxFractionDigits(4))),
	)
}

// tableHeaderRow: cabecera de la tabla de materiales.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("#", 1, align.Center),
		h("Material", 5, align.Left),
		h("Base (kg)", 3, align.Right),
		h("A pesar (kg)", 3, align.Right),
	)
}

// tableDetailRows: una fila por material. Formula y Materials comparten el orden.
func tableDetailRows(data ports.ProductionSheet) []core.Row {
	base := data.Formula.Formula
	result := make([]core.Row, 0, len(data.Materials))
	for i, m := range data.Materials {
		baseKg := "—"
		if i < len(base) {
			baseKg = kg(base[i].AmountKg)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(nonEmpty(m.InventoryName, m.InventoryID), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(baseKg, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray})),
			col.New(3).Add(text.New(kg(m.AmountKg), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: total de la receta base y total a pesar.
func totalsRow(data ports.ProductionSheet) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(kg(formula.TotalKg(data.Formula.Formula)), props.Text{
			Size: 9, Align: align.Right, Top: 2, Right: 1, Color: colorGray,
		})),
		col.New(3).Add(text.New(kg(formula.TotalKg(data.Materials)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// footerRow: QR con fórmula y peso para el registro de tejido, más espacio de firmas.
func footerRow(data ports.ProductionSheet) core.Row {
	qr := fmt.Sprintf("knit-formula:%s;weight=%s", data.Formula.ID, kg(data.ActualWeight))
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Pesar cada material antes de cargar la máquina.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Operario: ______________________", props.Text{Size: 9, Top: 18, Left: 3}),
			text.New("Supervisor: ____________________", props.Text{Size: 9, Top: 28, Left: 3}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
