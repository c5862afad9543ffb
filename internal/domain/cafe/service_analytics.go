package cafe

import "sort"

// Aggregator recomputes the analytics snapshot by scanning the full
// order/item/staff collections on every call. No incremental state.
type Aggregator struct{}

// Aggregate fills every field derivable from real data. The
// satisfaction and daily-revenue placeholders are the caller's to
// supply from an estimator.
func (Aggregator) Aggregate(orders []Order, items []CafeItem, staff []Staff, period string) AnalyticsSnapshot {
	// Revenue counts every order regardless of status, cancelled and
	// pending included.
	var revenue float64
	for _, o := range orders {
		revenue += o.TotalAmount
	}
	avg := 0.0
	if len(orders) > 0 {
		avg = revenue / float64(len(orders))
	}

	return AnalyticsSnapshot{
		TotalRevenue:      revenue,
		TotalOrders:       len(orders),
		AverageOrderValue: avg,
		TopSellingItems:   topSellers(orders, items),
		StaffPerformance:  staffPerformance(orders, staff),
		InventoryAlerts:   inventoryAlerts(items),
		Period:            period,
	}
}

// topSellers ranks items by total quantity sold across all orders,
// descending, ties broken by item id ascending so the order is
// deterministic. Revenue uses the item's current price, not the price
// at order time. Items missing from the menu are skipped.
func topSellers(orders []Order, items []CafeItem) []TopSeller {
	sold := map[string]int{}
	for _, o := range orders {
		for _, line := range o.Lines {
			sold[line.ItemID] += line.Quantity
		}
	}

	byID := make(map[string]CafeItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	ids := make([]string, 0, len(sold))
	for id := range sold {
		if _, ok := byID[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if sold[ids[i]] != sold[ids[j]] {
			return sold[ids[i]] > sold[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > TopSellerLimit {
		ids = ids[:TopSellerLimit]
	}

	out := make([]TopSeller, 0, len(ids))
	for _, id := range ids {
		item := byID[id]
		out = append(out, TopSeller{
			ItemID:       id,
			Name:         item.Name,
			QuantitySold: sold[id],
			Revenue:      float64(sold[id]) * item.Price,
		})
	}
	return out
}

func staffPerformance(orders []Order, staff []Staff) []StaffPerformance {
	handled := map[string]int{}
	for _, o := range orders {
		if o.StaffID != "" {
			handled[o.StaffID]++
		}
	}
	out := make([]StaffPerformance, 0, len(staff))
	for _, s := range staff {
		out = append(out, StaffPerformance{
			StaffID:       s.ID,
			Name:          s.Name,
			Role:          s.Role,
			HoursWorked:   s.TotalHoursWorked,
			OrdersHandled: handled[s.ID],
		})
	}
	return out
}

func inventoryAlerts(items []CafeItem) []InventoryAlert {
	out := make([]InventoryAlert, 0)
	for _, item := range items {
		if item.LowOnStock() {
			out = append(out, InventoryAlert{
				ItemID:       item.ID,
				Name:         item.Name,
				CurrentStock: item.StockQuantity,
				MinStock:     item.MinStockLevel,
			})
		}
	}
	return out
}
