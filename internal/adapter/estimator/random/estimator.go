package random

import (
	"math/rand"
	"sync"
	"time"

	"meowtopia/internal/domain/cafe"
)

// Estimator fills the analytics placeholders with generated values:
// satisfaction in [4.0, 5.0) and a daily revenue series in [100, 500).
// rand.Rand is not safe for concurrent use, so mu serializes draws.
type Estimator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewEstimator(seed int64, now func() time.Time) *Estimator {
	if now == nil {
		now = time.Now
	}
	return &Estimator{rng: rand.New(rand.NewSource(seed)), now: now}
}

func (e *Estimator) CustomerSatisfaction() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return 4.0 + e.rng.Float64()
}

// DailyRevenue returns one point per day ending today, oldest first.
func (e *Estimator) DailyRevenue(days int) []cafe.DailyRevenuePoint {
	if days <= 0 {
		days = cafe.DefaultDailyRevenueDays
	}
	today := e.now().UTC()
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]cafe.DailyRevenuePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		out = append(out, cafe.DailyRevenuePoint{
			Date:    day.Format("2006-01-02"),
			Revenue: roundCents(100 + e.rng.Float64()*400),
		})
	}
	return out
}

func roundCents(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
