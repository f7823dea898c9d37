package forecast

import (
	"fmt"
	"time"

	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/de-tools/backup-atlas/pkg/services/catalog"
	"github.com/shopspring/decimal"
)

const forecastMonths = 12

// Estimator projects backup storage costs for the next 12 calendar
// months. It is a pure function of the catalog plus one resource and
// one anchor instant sampled per call, so a single Estimator is safe
// for concurrent use.
type Estimator struct {
	catalog      *catalog.Catalog
	now          func() time.Time
	disableCache bool
}

type Option func(*Estimator)

// WithClock overrides the anchor clock. Tests pin it to a fixed date.
func WithClock(now func() time.Time) Option {
	return func(e *Estimator) { e.now = now }
}

// WithoutCache forces direct enumeration for every month, trading speed
// for the always-correct path.
func WithoutCache() Option {
	return func(e *Estimator) { e.disableCache = true }
}

func NewEstimator(c *catalog.Catalog, opts ...Option) *Estimator {
	e := &Estimator{catalog: c, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate validates the resource against the catalog and returns its
// 12-month forecast. Validation runs before any cost math: a bad type,
// job or size never yields a partial result.
func (e *Estimator) Estimate(res domain.Resource) (domain.CostForecast, error) {
	price, ok := e.catalog.Price(res.Type)
	if !ok {
		return domain.CostForecast{}, fmt.Errorf("%w: %s", ErrUnsupportedResourceType, res.Type)
	}
	if res.SizeGB < 0 {
		return domain.CostForecast{}, fmt.Errorf("%w: size_gb must not be negative, got %v", ErrInvalidInput, res.SizeGB)
	}

	schedules := e.catalog.Schedules()
	if res.Job != "" {
		s, ok := e.catalog.Schedule(res.Job)
		if !ok {
			return domain.CostForecast{}, fmt.Errorf("%w: %s", ErrUnknownBackupJob, res.Job)
		}
		schedules = []domain.Schedule{s}
	}

	anchor := midnightUTC(e.now())
	return domain.CostForecast{
		Resource:     res,
		MonthlyCosts: e.aggregate(anchor, res.SizeGB, price, schedules),
	}, nil
}

// aggregate walks 12 forward calendar months from the anchor and
// resolves each schedule's cost per month, from the month cache when
// eligible, otherwise by direct enumeration.
func (e *Estimator) aggregate(
	anchor time.Time,
	sizeGB float64,
	price domain.PriceEntry,
	schedules []domain.Schedule,
) []domain.MonthlyCost {
	var cache *monthCache
	if !e.disableCache {
		cache = newMonthCache(schedules, anchor, sizeGB, price)
	}

	items := make([]domain.MonthlyCost, 0, forecastMonths)
	for month := 1; month <= forecastMonths; month++ {
		winStart := domain.AddMonths(anchor, month-1)
		winEnd := domain.AddMonths(winStart, 1)
		windowDays := daysBetween(winStart, winEnd)

		var monthTotal float64
		breakdown := make(map[string]float64, len(schedules))
		for _, s := range schedules {
			cost, ok := cache.lookup(s.Name, windowDays)
			if !ok {
				cost = windowCost(s, anchor, winStart, winEnd, windowDays, sizeGB, price)
			}
			breakdown[s.Name] = round6(cost)
			monthTotal += cost
		}

		items = append(items, domain.MonthlyCost{
			Month:     month,
			Cost:      round6(monthTotal),
			Breakdown: breakdown,
		})
	}
	return items
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round6(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(6).Float64()
	return f
}
