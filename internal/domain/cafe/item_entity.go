package cafe

import "time"

func NewCafeItem(id, name string, category ItemCategory, description string, price, cost float64, stock, minStock int, now time.Time) CafeItem {
	return CafeItem{
		ID:            id,
		CafeID:        DefaultCafeID,
		Name:          name,
		Category:      category,
		Description:   description,
		Price:         price,
		Cost:          cost,
		StockQuantity: stock,
		MinStockLevel: minStock,
		ProfitMargin:  ProfitMargin(price, cost),
		IsAvailable:   stock > 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ProfitMargin is (price-cost)/price as a percentage, 0 for a free item.
func ProfitMargin(price, cost float64) float64 {
	if price == 0 {
		return 0
	}
	return (price - cost) / price * 100
}

// SetStock replaces the stock level, clamping to zero, and recomputes
// availability.
func (i *CafeItem) SetStock(quantity int, now time.Time) {
	if quantity < 0 {
		quantity = 0
	}
	i.StockQuantity = quantity
	i.IsAvailable = i.StockQuantity > 0
	i.UpdatedAt = now
}

func (i *CafeItem) decrementStock(quantity int, now time.Time) {
	i.StockQuantity -= quantity
	i.IsAvailable = i.StockQuantity > 0
	i.UpdatedAt = now
}

// LowOnStock reports whether the item should raise an inventory alert.
// Boundary equality counts as low.
func (i CafeItem) LowOnStock() bool {
	return i.StockQuantity <= i.MinStockLevel
}
