package forecast

import (
	"testing"
	"time"

	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailySchedule() domain.Schedule {
	return domain.Schedule{
		Name:      "daily",
		Interval:  domain.Interval{Fixed: day},
		Retention: 30 * day,
		ColdAfter: 5 * day,
	}
}

func TestEnumerate_PointAtWindowStart_SplitsWarmAndCold(t *testing.T) {
	anchor := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	winEnd := anchor.AddDate(0, 0, 30)

	points := enumerate(dailySchedule(), anchor, anchor, winEnd, true)
	require.NotEmpty(t, points)

	// The recovery point created exactly at the window start stays warm
	// for the cold-after offset and cold until the window closes.
	assert.Equal(t, 5, points[0].warm)
	assert.Equal(t, 25, points[0].cold)
}

func TestEnumerate_WorkedExampleCost(t *testing.T) {
	anchor := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	winEnd := anchor.AddDate(0, 0, 30)
	price := domain.PriceEntry{Warm: 0.05, Cold: coldRate(0.0125)}

	points := enumerate(dailySchedule(), anchor, anchor, winEnd, true)
	first := points[0]

	cost := 100*(float64(first.warm)/30)*price.Warm +
		100*(float64(first.cold)/30)*price.ColdRate()
	assert.InDelta(t, 1.8750, cost, 1e-4)
}

func TestEnumerate_ColdUnpriced_NeverBillsColdDays(t *testing.T) {
	anchor := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	winEnd := anchor.AddDate(0, 0, 30)

	for _, p := range enumerate(dailySchedule(), anchor, anchor, winEnd, false) {
		assert.Zero(t, p.cold)
		// Warm accrual still stops at the cold-after offset: the point
		// leaves the warm tier either way.
		assert.LessOrEqual(t, p.warm, 5)
	}
}

func TestEnumerate_NoColdAfter_NeverBillsColdDays(t *testing.T) {
	s := domain.Schedule{
		Name:      "intraday",
		Interval:  domain.Interval{Fixed: 4 * time.Hour},
		Retention: 7 * day,
	}
	anchor := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	winEnd := anchor.AddDate(0, 0, 30)

	for _, p := range enumerate(s, anchor, anchor, winEnd, true) {
		assert.Zero(t, p.cold)
	}
}

func TestEnumerate_AttributedDaysNeverExceedRetentionOrWindow(t *testing.T) {
	anchor := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	schedules := []domain.Schedule{
		dailySchedule(),
		{Name: "intraday", Interval: domain.Interval{Fixed: 4 * time.Hour}, Retention: 7 * day},
		{Name: "weekly", Interval: domain.Interval{Fixed: 7 * day}, Retention: 90 * day, ColdAfter: 5 * day},
		{Name: "monthly", Interval: domain.Interval{Months: 1}, Retention: 180 * day, ColdAfter: 5 * day},
	}

	for month := 0; month < 12; month++ {
		winStart := domain.AddMonths(anchor, month)
		winEnd := domain.AddMonths(winStart, 1)
		windowDays := int(winEnd.Sub(winStart) / day)

		for _, s := range schedules {
			for _, p := range enumerate(s, anchor, winStart, winEnd, true) {
				retentionDays := int(s.Retention / day)
				assert.LessOrEqual(t, p.warm+p.cold, retentionDays,
					"schedule %s month %d", s.Name, month)
				assert.LessOrEqual(t, p.warm+p.cold, windowDays,
					"schedule %s month %d", s.Name, month)
			}
		}
	}
}

func TestEnumerate_StepsPastPointsBeforeWindow(t *testing.T) {
	anchor := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	winStart := anchor.AddDate(0, 1, 0)
	winEnd := winStart.AddDate(0, 1, 0)

	s := domain.Schedule{
		Name:      "weekly",
		Interval:  domain.Interval{Fixed: 7 * day},
		Retention: 90 * day,
	}
	points := enumerate(s, anchor, winStart, winEnd, true)

	// May 2025 holds the anchor-phased weekly points of May 6, 13, 20, 27.
	assert.Len(t, points, 4)
}

func TestWindowCost_ZeroSize_IsFree(t *testing.T) {
	anchor := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	winEnd := anchor.AddDate(0, 0, 30)
	price := domain.PriceEntry{Warm: 0.05, Cold: coldRate(0.0125)}

	cost := windowCost(dailySchedule(), anchor, anchor, winEnd, 30, 0, price)
	assert.Zero(t, cost)
}

func TestWindowCost_FullDailyMonth(t *testing.T) {
	anchor := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	winEnd := anchor.AddDate(0, 0, 30)
	price := domain.PriceEntry{Warm: 0.05, Cold: coldRate(0.0125)}

	// Summing the worked per-point formula over all 30 recovery points:
	// warm days total 140, cold days total 325.
	cost := windowCost(dailySchedule(), anchor, anchor, winEnd, 30, 100, price)
	assert.InDelta(t, 36.875, cost, 1e-9)
}

func coldRate(v float64) *float64 { return &v }
