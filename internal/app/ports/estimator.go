package ports

import "meowtopia/internal/domain/cafe"

// SatisfactionEstimator supplies the analytics fields that are not
// derived from order data. The default adapter generates placeholder
// values; a real scoring pipeline can be plugged in without touching
// the aggregator.
type SatisfactionEstimator interface {
	CustomerSatisfaction() float64
	DailyRevenue(days int) []cafe.DailyRevenuePoint
}
