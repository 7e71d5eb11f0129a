package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-backoffice/internal/application/usecase"
	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
)

func formulaBackend() *fakeBackend {
	backend := newFakeBackend()
	backend.objects["/knit-formulas/f-1"] = entity.KnitFormula{
		ID:               "f-1",
		Product:          entity.InventoryRef{ID: "p-1", Name: "Kain Rayon"},
		ProductionWeight: 3,
		Formula: []entity.FormulaItem{
			{InventoryID: "y-1", InventoryName: "Benang Rayon 30s", AmountKg: 2},
			{InventoryID: "y-2", InventoryName: "Spandex 20D", AmountKg: 1},
		},
	}
	return backend
}

func TestFormulaScale_DevuelveTextoParaMostrar(t *testing.T) {
	uc := usecase.NewFormulaUseCase(formulaBackend(), &fakeSheets{})

	res, err := uc.Scale(context.Background(), testSession, "f-1", 1000)
	require.NoError(t, err)
	assert.InDelta(t, 333.3333, res.Ratio, 1e-3)
	require.Len(t, res.Materials, 2)
	assert.Equal(t, "666,67", res.Materials[0].AmountDisplay)
	assert.Equal(t, "333,33", res.Materials[1].AmountDisplay)
	assert.InDelta(t, 1000, res.TotalKg, 1e-9)
	assert.Equal(t, "1.000", res.TotalDisplay)
}

func TestFormulaScale_SinPesoRealDevuelveLaBase(t *testing.T) {
	uc := usecase.NewFormulaUseCase(formulaBackend(), &fakeSheets{})

	res, err := uc.Scale(context.Background(), testSession, "f-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Ratio)
	assert.Equal(t, 2.0, res.Materials[0].AmountKg)
	assert.Equal(t, 1.0, res.Materials[1].AmountKg)
}

func TestFormulaScale_FormulaInexistente(t *testing.T) {
	uc := usecase.NewFormulaUseCase(newFakeBackend(), &fakeSheets{})
	_, err := uc.Scale(context.Background(), testSession, "x", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFormulaProductionSheet_RequierePeso(t *testing.T) {
	sheets := &fakeSheets{}
	uc := usecase.NewFormulaUseCase(formulaBackend(), sheets)

	_, err := uc.ProductionSheet(context.Background(), testSession, "f-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, sheets.data.Formula)
}

func TestFormulaProductionSheet_EnviaMaterialesEscalados(t *testing.T) {
	sheets := &fakeSheets{}
	uc := usecase.NewFormulaUseCase(formulaBackend(), sheets)

	pdf, err := uc.ProductionSheet(context.Background(), testSession, "f-1", 6)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Equal(t, "f-1", sheets.data.Formula.ID)
	assert.Equal(t, 2.0, sheets.data.Ratio)
	assert.Equal(t, 4.0, sheets.data.Materials[0].AmountKg)
	assert.Equal(t, "Dewi", sheets.data.GeneratedBy)
	assert.False(t, sheets.data.GeneratedAt.IsZero())
}
