package forecast

import (
	"time"

	"github.com/de-tools/backup-atlas/pkg/models/domain"
)

// Calendar months come in these lengths; 29 is left out on purpose so a
// leap February falls back to direct enumeration.
var genericMonthLengths = [...]int{28, 30, 31}

// monthCache memoizes a schedule's cost for a generic month length,
// computed once per forecast against a window starting at the anchor,
// and reused for every calendar month sharing that length.
//
// Reuse is only sound when the recovery-point phase relative to a
// window's start is the same for every window: that holds for schedules
// whose fixed interval evenly divides a day, because points then land
// on every midnight and all windows here start at midnight. Anything
// else, and any schedule retaining 31 days or longer, is enumerated
// directly against the real month boundaries.
type monthCache struct {
	costs map[string]map[int]float64
}

func cacheable(s domain.Schedule) bool {
	return s.Retention < 31*day && s.Interval.DividesDay()
}

func newMonthCache(
	schedules []domain.Schedule,
	anchor time.Time,
	sizeGB float64,
	price domain.PriceEntry,
) *monthCache {
	c := &monthCache{costs: make(map[string]map[int]float64)}
	for _, s := range schedules {
		if !cacheable(s) {
			continue
		}
		byLength := make(map[int]float64, len(genericMonthLengths))
		for _, length := range genericMonthLengths {
			end := anchor.AddDate(0, 0, length)
			byLength[length] = windowCost(s, anchor, anchor, end, length, sizeGB, price)
		}
		c.costs[s.Name] = byLength
	}
	return c
}

func (c *monthCache) lookup(schedule string, windowDays int) (float64, bool) {
	if c == nil {
		return 0, false
	}
	byLength, ok := c.costs[schedule]
	if !ok {
		return 0, false
	}
	cost, ok := byLength[windowDays]
	return cost, ok
}
