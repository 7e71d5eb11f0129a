package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/application/usecase"
	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// ──────────────────────────────────────────────────────────────────────────────
// List / Get / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogList_PaginacionPorDefecto(t *testing.T) {
	backend := newFakeBackend()
	for i := 0; i < 15; i++ {
		backend.lists[usecase.BuyerPath] = append(backend.lists[usecase.BuyerPath], entity.Buyer{ID: fmt.Sprint(i), Name: gofakeit.Company()})
	}
	uc := usecase.NewCatalogUseCase(backend, nil, usecase.BuyerResource(), usecase.ExportConfig{})

	res, err := uc.List(context.Background(), testSession, ports.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, res.Items, 10)
	assert.Equal(t, dto.PageResponse{Page: 1, Limit: 10, Total: 15, TotalPages: 2}, res.Page)
}

func TestCatalogList_LimiteMaximoYFiltrosPermitidos(t *testing.T) {
	backend := newFakeBackend()
	uc := usecase.NewCatalogUseCase(backend, nil, usecase.InventoryResource(), usecase.ExportConfig{})

	_, err := uc.List(context.Background(), testSession, ports.ListQuery{
		Search:  "  benang   katun ",
		Page:    2,
		Limit:   500,
		Filters: map[string]string{"category": "yarn", "company_id": "x", "low_stock": ""},
	})
	require.NoError(t, err)

	calls := backend.listCalls(usecase.InventoryPath)
	require.Len(t, calls, 1)
	assert.Equal(t, 2, calls[0].Page)
	assert.Equal(t, 100, calls[0].Limit)
	assert.Equal(t, "benang katun", calls[0].Search)
	assert.Equal(t, map[string]string{"category": "yarn"}, calls[0].Filters)
}

func TestCatalogList_ListaVaciaNoEsNil(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeBackend(), nil, usecase.SupplierResource(), usecase.ExportConfig{})
	res, err := uc.List(context.Background(), testSession, ports.ListQuery{})
	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestCatalogGet_IDVacioEsInvalido(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeBackend(), nil, usecase.MachineResource(), usecase.ExportConfig{})
	_, err := uc.Get(context.Background(), testSession, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogGet_EscapaElID(t *testing.T) {
	backend := newFakeBackend()
	backend.objects["/machines/a%2Fb"] = entity.Machine{ID: "a/b", Name: "Rundstrick 30"}
	uc := usecase.NewCatalogUseCase(backend, nil, usecase.MachineResource(), usecase.ExportConfig{})

	m, err := uc.Get(context.Background(), testSession, "a/b")
	require.NoError(t, err)
	assert.Equal(t, "Rundstrick 30", m.Name)
}

func TestCatalogGet_NoEncontrado(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeBackend(), nil, usecase.OperatorResource(), usecase.ExportConfig{})
	_, err := uc.Get(context.Background(), testSession, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogDelete_UsaRutaDelRegistro(t *testing.T) {
	backend := newFakeBackend()
	uc := usecase.NewCatalogUseCase(backend, nil, usecase.DyeingLogResource(), usecase.ExportConfig{})
	require.NoError(t, uc.Delete(context.Background(), testSession, "dl-9"))
	assert.Equal(t, backendCall{Method: "DELETE", Path: "/dyeing-logs/dl-9", Body: []byte("null")}, backend.lastWrite())
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogCreate_ValidaAntesDeLlamarAlBackend(t *testing.T) {
	backend := newFakeBackend()
	uc := usecase.NewCatalogUseCase(backend, nil, usecase.InventoryResource(), usecase.ExportConfig{})

	_, err := uc.Create(context.Background(), testSession, dto.InventoryRequest{Name: "Benang 30s", Category: "metal"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category", verr.Field)
	assert.Empty(t, backend.writes)
}

func TestCatalogCreate_CompraRecalculaTotales(t *testing.T) {
	backend := newFakeBackend()
	uc := usecase.NewCatalogUseCase(backend, nil, usecase.PurchaseResource(), usecase.ExportConfig{})

	in := dto.PurchaseRequest{
		Date:     "2024-03-01",
		Supplier: entity.PartnerRef{ID: "s-1", Name: gofakeit.Company()},
		Items: []dto.TradeLineRequest{
			{InventoryID: "i-1", QuantityKg: dec("2.5"), PricePerKg: dec("10000"), Subtotal: dec("1")},
			{InventoryID: "i-2", QuantityKg: dec("1"), PricePerKg: dec("333.333")},
		},
		Total: dec("999"),
	}
	out, err := uc.Create(context.Background(), testSession, in)
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("25000").Equal(out.Items[0].Subtotal))
	assert.True(t, decimal.RequireFromString("333.33").Equal(out.Items[1].Subtotal))
	assert.True(t, decimal.RequireFromString("25333.33").Equal(out.Total))
	assert.Equal(t, "/purchases", backend.lastWrite().Path)
	assert.Equal(t, "1", in.Items[0].Subtotal.String(), "el request original no se modifica")
}

func TestCatalogUpdate_VentaConLineasInvalidas(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeBackend(), nil, usecase.SaleResource(), usecase.ExportConfig{})
	_, err := uc.Update(context.Background(), testSession, "sale-1", dto.SaleRequest{
		Date:  "2024-03-01",
		Buyer: entity.PartnerRef{ID: "b-1"},
		Items: []dto.TradeLineRequest{{InventoryID: "i-1", QuantityKg: dec("0"), PricePerKg: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogCreate_RegistroDeTejidoEscalaLaFormula(t *testing.T) {
	backend := newFakeBackend()
	backend.objects["/knit-formulas/f-1"] = entity.KnitFormula{
		ID:               "f-1",
		Product:          entity.InventoryRef{ID: "p-1", Name: "Kain Cotton Combed"},
		ProductionWeight: 100,
		Formula: []entity.FormulaItem{
			{InventoryID: "y-1", InventoryName: "Benang 30s", AmountKg: 60},
			{InventoryID: "y-2", InventoryName: "Spandex", AmountKg: 40},
		},
	}
	formulas := usecase.NewFormulaUseCase(backend, &fakeSheets{})
	uc := usecase.NewCatalogUseCase(backend, nil, usecase.KnittingLogResource(formulas), usecase.ExportConfig{})

	out, err := uc.Create(context.Background(), testSession, dto.KnittingLogRequest{
		Date:             "2024-03-02",
		Machine:          entity.Ref{ID: "m-1"},
		KnitFormulaID:    "f-1",
		ProductionWeight: 250,
		Materials:        []entity.FormulaItem{{InventoryID: "ignorado", AmountKg: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", out.Product.ID)
	require.Len(t, out.Materials, 2)
	assert.InDelta(t, 150, out.Materials[0].AmountKg, 1e-9)
	assert.InDelta(t, 100, out.Materials[1].AmountKg, 1e-9)
}

func TestCatalogCreate_RegistroDeTejidoRequierePesoPositivo(t *testing.T) {
	backend := newFakeBackend()
	formulas := usecase.NewFormulaUseCase(backend, &fakeSheets{})
	uc := usecase.NewCatalogUseCase(backend, nil, usecase.KnittingLogResource(formulas), usecase.ExportConfig{})

	_, err := uc.Create(context.Background(), testSession, dto.KnittingLogRequest{
		Date: "2024-03-02", Machine: entity.Ref{ID: "m-1"}, KnitFormulaID: "f-1", ProductionWeight: 0,
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "production_weight", verr.Field)
}

func TestCatalogCreate_FormulaSinPesoBase(t *testing.T) {
	backend := newFakeBackend()
	backend.objects["/knit-formulas/f-0"] = entity.KnitFormula{ID: "f-0", ProductionWeight: 0}
	formulas := usecase.NewFormulaUseCase(backend, &fakeSheets{})
	uc := usecase.NewCatalogUseCase(backend, nil, usecase.KnittingLogResource(formulas), usecase.ExportConfig{})

	_, err := uc.Create(context.Background(), testSession, dto.KnittingLogRequest{
		Date: "2024-03-02", Machine: entity.Ref{ID: "m-1"}, KnitFormulaID: "f-0", ProductionWeight: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, backend.writes)
}

func TestCatalogCreate_PesoEnTextoLocal(t *testing.T) {
	var in dto.KnitFormulaRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"product": {"id": "p-1"},
		"formula": [{"inventory_id": "y-1", "amount_kg": "1.250,5"}],
		"production_weight": "2.000"
	}`), &in))
	require.NoError(t, in.Validate())
	assert.Equal(t, 1250.5, in.Formula[0].AmountKg.Float64())
	assert.Equal(t, 2000.0, in.ProductionWeight.Float64())
}

// ──────────────────────────────────────────────────────────────────────────────
// Options / Export
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogOptions_OrdenadasPorEtiqueta(t *testing.T) {
	backend := newFakeBackend()
	backend.setList(usecase.BuyerPath,
		entity.Buyer{ID: "3", Name: "zeta textil"},
		entity.Buyer{ID: "1", Name: "Alfa"},
		entity.Buyer{ID: "2", Name: "beta"},
	)
	uc := usecase.NewCatalogUseCase(backend, nil, usecase.BuyerResource(), usecase.ExportConfig{})

	opts, err := uc.Options(context.Background(), testSession, "")
	require.NoError(t, err)
	assert.Equal(t, []dto.Option{
		{Value: "1", Label: "Alfa"},
		{Value: "2", Label: "beta"},
		{Value: "3", Label: "zeta textil"},
	}, opts)
}

func TestCatalogOptions_RecursoSinEtiqueta(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeBackend(), nil, usecase.DyeingLogResource(), usecase.ExportConfig{})
	_, err := uc.Options(context.Background(), testSession, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogExport_RecorrePaginasHastaMaxRows(t *testing.T) {
	backend := newFakeBackend()
	for i := 0; i < 25; i++ {
		backend.lists[usecase.SupplierPath] = append(backend.lists[usecase.SupplierPath], entity.Supplier{ID: fmt.Sprint(i), Name: gofakeit.Company()})
	}
	exporter := &fakeExporter{}
	uc := usecase.NewCatalogUseCase(backend, exporter, usecase.SupplierResource(), usecase.ExportConfig{MaxRows: 22, PageSize: 10})

	file, err := uc.Export(context.Background(), testSession, ports.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, "xlsx:Nombre,Teléfono,Dirección,NPWP", string(file))
	assert.Len(t, exporter.sheet.Rows, 22)
	assert.Len(t, backend.listCalls(usecase.SupplierPath), 3)
	assert.Equal(t, "Proveedores", exporter.sheet.Name)
}

func TestCatalogExport_TerminaEnLaUltimaPagina(t *testing.T) {
	backend := newFakeBackend()
	backend.setList(usecase.OperatorPath, entity.Operator{ID: "1", Name: "Budi"}, entity.Operator{ID: "2", Name: "Sari"})
	exporter := &fakeExporter{}
	uc := usecase.NewCatalogUseCase(backend, exporter, usecase.OperatorResource(), usecase.ExportConfig{})

	_, err := uc.Export(context.Background(), testSession, ports.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, backend.listCalls(usecase.OperatorPath), 1)
	assert.Equal(t, []any{"Budi", "", "", false}, exporter.sheet.Rows[0])
}

func dec(s string) locale.Decimal {
	return locale.NewDecimal(decimal.RequireFromString(s))
}
