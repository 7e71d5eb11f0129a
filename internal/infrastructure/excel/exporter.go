// Package excel exporta listados del back office a .xlsx con excelize.
package excel

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/textile-backoffice/internal/application/ports"
)

var _ ports.SpreadsheetExporter = (*Exporter)(nil)

const (
	defaultSheet = "Sheet1"
	maxSheetName = 31
	minColWidth  = 10
	maxColWidth  = 60
)

// Exporter implementa ports.SpreadsheetExporter.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export escribe encabezados en negrita, una fila por registro y ajusta el ancho de columnas.
// Los decimal.Decimal se guardan como número para que Excel pueda sumarlos.
func (e *Exporter) Export(sheet ports.Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	name := sheetName(sheet.Name)
	if err := f.SetSheetName(defaultSheet, name); err != nil {
		return nil, fmt.Errorf("excel: nombre de hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	widths := make([]int, len(sheet.Headers))
	for i, h := range sheet.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return nil, fmt.Errorf("excel: encabezado %s: %w", cell, err)
		}
		widths[i] = utf8.RuneCountInString(h)
	}
	if len(sheet.Headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
		if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
			return nil, fmt.Errorf("excel: estilo encabezado: %w", err)
		}
	}

	for r, values := range sheet.Rows {
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			v = cellValue(v)
			if err := f.SetCellValue(name, cell, v); err != nil {
				return nil, fmt.Errorf("excel: celda %s: %w", cell, err)
			}
			if c < len(widths) {
				if n := utf8.RuneCountInString(fmt.Sprint(v)); n > widths[c] {
					widths[c] = n
				}
			}
		}
	}

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(name, col, col, float64(clamp(w+2, minColWidth, maxColWidth))); err != nil {
			return nil, fmt.Errorf("excel: ancho de columna: %w", err)
		}
	}
	if len(sheet.Headers) > 0 {
		_ = f.SetPanes(name, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}

func cellValue(v any) any {
	switch d := v.(type) {
	case decimal.Decimal:
		f, _ := d.Float64()
		return f
	case *decimal.Decimal:
		if d == nil {
			return nil
		}
		f, _ := d.Float64()
		return f
	default:
		return v
	}
}

// sheetName respeta el límite de 31 caracteres de Excel.
func sheetName(s string) string {
	if s == "" {
		return defaultSheet
	}
	if utf8.RuneCountInString(s) > maxSheetName {
		return string([]rune(s)[:maxSheetName])
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
