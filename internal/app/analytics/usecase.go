package analytics

import (
	"context"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
)

// SnapshotUseCase assembles the dashboard payload: derived figures from
// the aggregator plus the estimator's placeholder metrics.
type SnapshotUseCase struct {
	Orders     ports.OrderRepository
	Items      ports.ItemRepository
	Staff      ports.StaffRepository
	Estimator  ports.SatisfactionEstimator
	Aggregator cafe.Aggregator
}

func (u SnapshotUseCase) Execute(ctx context.Context, period string) (cafe.AnalyticsSnapshot, error) {
	if period == "" {
		period = "daily"
	}

	orders, err := u.Orders.List(ctx)
	if err != nil {
		return cafe.AnalyticsSnapshot{}, err
	}
	items, err := u.Items.List(ctx)
	if err != nil {
		return cafe.AnalyticsSnapshot{}, err
	}
	staff, err := u.Staff.List(ctx)
	if err != nil {
		return cafe.AnalyticsSnapshot{}, err
	}

	snapshot := u.Aggregator.Aggregate(orders, items, staff, period)
	if u.Estimator != nil {
		snapshot.CustomerSatisfaction = u.Estimator.CustomerSatisfaction()
		snapshot.DailyRevenue = u.Estimator.DailyRevenue(cafe.DefaultDailyRevenueDays)
	}
	return snapshot, nil
}
