package usecase

import (
	"strings"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/internal/domain/formula"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// Rutas de los recursos en el backend.
const (
	InventoryPath   = "/inventory"
	BuyerPath       = "/buyers"
	SupplierPath    = "/suppliers"
	MachinePath     = "/machines"
	OperatorPath    = "/operators"
	PurchasePath    = "/purchases"
	SalePath        = "/sales"
	KnittingLogPath = "/knitting-logs"
	DyeingLogPath   = "/dyeing-logs"
)

// Filtros de rango de fechas compartidos por los registros con fecha.
var dateFilters = []string{"date_from", "date_to"}

func withDates(filters ...string) []string {
	return append(filters, dateFilters...)
}

// InventoryResource inventario de hilos, telas, tintes y químicos.
func InventoryResource() Resource[entity.InventoryItem, dto.InventoryRequest] {
	return Resource[entity.InventoryItem, dto.InventoryRequest]{
		Name:    "Inventario",
		Path:    InventoryPath,
		Filters: []string{"category", "low_stock"},
		Label: func(i entity.InventoryItem) string {
			if i.Code == "" {
				return i.Name
			}
			return i.Code + " - " + i.Name
		},
		Value: func(i entity.InventoryItem) string { return i.ID },
		Columns: []Column[entity.InventoryItem]{
			{"Código", func(i entity.InventoryItem) any { return i.Code }},
			{"Nombre", func(i entity.InventoryItem) any { return i.Name }},
			{"Categoría", func(i entity.InventoryItem) any { return i.Category }},
			{"Unidad", func(i entity.InventoryItem) any { return i.Unit }},
			{"Stock (kg)", func(i entity.InventoryItem) any { return i.StockKg }},
			{"Stock mínimo (kg)", func(i entity.InventoryItem) any { return i.MinStockKg }},
			{"Precio", func(i entity.InventoryItem) any { return i.Price }},
			{"Stock bajo", func(i entity.InventoryItem) any { return i.LowStock() }},
		},
	}
}

// BuyerResource compradores.
func BuyerResource() Resource[entity.Buyer, dto.BuyerRequest] {
	return Resource[entity.Buyer, dto.BuyerRequest]{
		Name:  "Compradores",
		Path:  BuyerPath,
		Label: func(b entity.Buyer) string { return b.Name },
		Value: func(b entity.Buyer) string { return b.ID },
		Columns: []Column[entity.Buyer]{
			{"Nombre", func(b entity.Buyer) any { return b.Name }},
			{"Teléfono", func(b entity.Buyer) any { return b.Phone }},
			{"Dirección", func(b entity.Buyer) any { return b.Address }},
			{"NPWP", func(b entity.Buyer) any { return b.TaxNumber }},
			{"Límite de crédito", func(b entity.Buyer) any { return b.CreditLimit }},
		},
	}
}

// SupplierResource proveedores.
func SupplierResource() Resource[entity.Supplier, dto.SupplierRequest] {
	return Resource[entity.Supplier, dto.SupplierRequest]{
		Name:  "Proveedores",
		Path:  SupplierPath,
		Label: func(s entity.Supplier) string { return s.Name },
		Value: func(s entity.Supplier) string { return s.ID },
		Columns: []Column[entity.Supplier]{
			{"Nombre", func(s entity.Supplier) any { return s.Name }},
			{"Teléfono", func(s entity.Supplier) any { return s.Phone }},
			{"Dirección", func(s entity.Supplier) any { return s.Address }},
			{"NPWP", func(s entity.Supplier) any { return s.TaxNumber }},
		},
	}
}

// MachineResource máquinas de tejido y teñido.
func MachineResource() Resource[entity.Machine, dto.MachineRequest] {
	return Resource[entity.Machine, dto.MachineRequest]{
		Name:    "Máquinas",
		Path:    MachinePath,
		Filters: []string{"type", "status"},
		Label: func(m entity.Machine) string {
			if m.Code == "" {
				return m.Name
			}
			return m.Code + " - " + m.Name
		},
		Value: func(m entity.Machine) string { return m.ID },
		Columns: []Column[entity.Machine]{
			{"Código", func(m entity.Machine) any { return m.Code }},
			{"Nombre", func(m entity.Machine) any { return m.Name }},
			{"Tipo", func(m entity.Machine) any { return m.Type }},
			{"Galga", func(m entity.Machine) any { return m.Gauge }},
			{"Diámetro", func(m entity.Machine) any { return m.Diameter }},
			{"Estado", func(m entity.Machine) any { return m.Status }},
		},
	}
}

// OperatorResource operarios.
func OperatorResource() Resource[entity.Operator, dto.OperatorRequest] {
	return Resource[entity.Operator, dto.OperatorRequest]{
		Name:    "Operarios",
		Path:    OperatorPath,
		Filters: []string{"shift", "active"},
		Label:   func(o entity.Operator) string { return o.Name },
		Value:   func(o entity.Operator) string { return o.ID },
		Columns: []Column[entity.Operator]{
			{"Nombre", func(o entity.Operator) any { return o.Name }},
			{"Teléfono", func(o entity.Operator) any { return o.Phone }},
			{"Turno", func(o entity.Operator) any { return o.Shift }},
			{"Activo", func(o entity.Operator) any { return o.Active }},
		},
	}
}

// KnitFormulaResource fórmulas de tejido.
func KnitFormulaResource() Resource[entity.KnitFormula, dto.KnitFormulaRequest] {
	return Resource[entity.KnitFormula, dto.KnitFormulaRequest]{
		Name:    "Fórmulas",
		Path:    KnitFormulaPath,
		Filters: []string{"product_id"},
		Label:   func(f entity.KnitFormula) string { return f.Product.Name },
		Value:   func(f entity.KnitFormula) string { return f.ID },
		Columns: []Column[entity.KnitFormula]{
			{"Producto", func(f entity.KnitFormula) any { return f.Product.Name }},
			{"Peso base (kg)", func(f entity.KnitFormula) any { return f.ProductionWeight }},
			{"Ingredientes", func(f entity.KnitFormula) any { return formulaSummary(f.Formula) }},
			{"Total (kg)", func(f entity.KnitFormula) any { return formula.TotalKg(f.Formula) }},
		},
	}
}

// PurchaseResource compras; el total se recalcula en el BFF.
func PurchaseResource() Resource[entity.Purchase, dto.PurchaseRequest] {
	return Resource[entity.Purchase, dto.PurchaseRequest]{
		Name:    "Compras",
		Path:    PurchasePath,
		Filters: withDates("supplier_id"),
		Label:   func(p entity.Purchase) string { return p.InvoiceNumber },
		Value:   func(p entity.Purchase) string { return p.ID },
		Columns: []Column[entity.Purchase]{
			{"Fecha", func(p entity.Purchase) any { return p.Date }},
			{"Factura", func(p entity.Purchase) any { return p.InvoiceNumber }},
			{"Proveedor", func(p entity.Purchase) any { return p.Supplier.Name }},
			{"Líneas", func(p entity.Purchase) any { return len(p.Items) }},
			{"Total", func(p entity.Purchase) any { return p.Total }},
		},
		Prepare: PreparePurchase,
	}
}

// SaleResource ventas; el total se recalcula en el BFF.
func SaleResource() Resource[entity.Sale, dto.SaleRequest] {
	return Resource[entity.Sale, dto.SaleRequest]{
		Name:    "Ventas",
		Path:    SalePath,
		Filters: withDates("buyer_id"),
		Label:   func(s entity.Sale) string { return s.InvoiceNumber },
		Value:   func(s entity.Sale) string { return s.ID },
		Columns: []Column[entity.Sale]{
			{"Fecha", func(s entity.Sale) any { return s.Date }},
			{"Vencimiento", func(s entity.Sale) any { return s.DueDate }},
			{"Factura", func(s entity.Sale) any { return s.InvoiceNumber }},
			{"Comprador", func(s entity.Sale) any { return s.Buyer.Name }},
			{"Líneas", func(s entity.Sale) any { return len(s.Items) }},
			{"Total", func(s entity.Sale) any { return s.Total }},
		},
		Prepare: PrepareSale,
	}
}

// KnittingLogResource registros de tejido; los materiales salen de la fórmula escalada.
func KnittingLogResource(formulas *FormulaUseCase) Resource[entity.KnittingLog, dto.KnittingLogRequest] {
	return Resource[entity.KnittingLog, dto.KnittingLogRequest]{
		Name:    "Tejido",
		Path:    KnittingLogPath,
		Filters: withDates("machine_id", "operator_id", "knit_formula_id"),
		Columns: []Column[entity.KnittingLog]{
			{"Fecha", func(l entity.KnittingLog) any { return l.Date }},
			{"Máquina", func(l entity.KnittingLog) any { return l.Machine.Name }},
			{"Operario", func(l entity.KnittingLog) any { return l.Operator.Name }},
			{"Turno", func(l entity.KnittingLog) any { return l.Shift }},
			{"Producto", func(l entity.KnittingLog) any { return l.Product.Name }},
			{"Peso (kg)", func(l entity.KnittingLog) any { return l.ProductionWeight }},
			{"Materiales", func(l entity.KnittingLog) any { return formulaSummary(l.Materials) }},
		},
		Prepare: formulas.PrepareKnittingLog,
	}
}

// DyeingLogResource registros de teñido.
func DyeingLogResource() Resource[entity.DyeingLog, dto.DyeingLogRequest] {
	return Resource[entity.DyeingLog, dto.DyeingLogRequest]{
		Name:    "Teñido",
		Path:    DyeingLogPath,
		Filters: withDates("machine_id", "operator_id", "color"),
		Columns: []Column[entity.DyeingLog]{
			{"Fecha", func(l entity.DyeingLog) any { return l.Date }},
			{"Máquina", func(l entity.DyeingLog) any { return l.Machine.Name }},
			{"Operario", func(l entity.DyeingLog) any { return l.Operator.Name }},
			{"Tela", func(l entity.DyeingLog) any { return l.Fabric.Name }},
			{"Color", func(l entity.DyeingLog) any { return l.Color }},
			{"Entrada (kg)", func(l entity.DyeingLog) any { return l.InputWeight }},
			{"Salida (kg)", func(l entity.DyeingLog) any { return l.OutputWeight }},
		},
	}
}

// formulaSummary "Hilo A: 12,5 kg; Hilo B: 3 kg" para una celda de Excel.
func formulaSummary(items []entity.FormulaItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.InventoryName+": "+locale.Format(it.AmountKg, displayDigits)+" kg")
	}
	return strings.Join(parts, "; ")
}
