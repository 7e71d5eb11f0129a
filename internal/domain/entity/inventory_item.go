package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de inventario.
const (
	CategoryYarn      = "yarn"
	CategoryFabric    = "fabric"
	CategoryDye       = "dye"
	CategoryChemical  = "chemical"
	CategoryAccessory = "accessory"
)

// InventoryCategories lista las categorías aceptadas.
var InventoryCategories = []string{CategoryYarn, CategoryFabric, CategoryDye, CategoryChemical, CategoryAccessory}

// InventoryItem representa un material del inventario (hilo, tela, tinte, químico).
// StockKg lo mantiene el backend a partir de compras, producción y ventas.
type InventoryItem struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Unit       string          `json:"unit"`
	StockKg    float64         `json:"stock_kg"`
	MinStockKg float64         `json:"min_stock_kg"`
	Price      decimal.Decimal `json:"price"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// LowStock indica si el stock está por debajo del mínimo configurado.
func (i InventoryItem) LowStock() bool {
	return i.MinStockKg > 0 && i.StockKg < i.MinStockKg
}

// InventoryRef referencia ligera a un material.
type InventoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
