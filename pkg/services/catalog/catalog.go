package catalog

import (
	"fmt"
	"time"

	"github.com/de-tools/backup-atlas/pkg/models/domain"
)

// Catalog is the process-wide backup schedule set and price table.
// It is built once at startup and read-only afterwards, so concurrent
// forecasts can share it without coordination.
type Catalog struct {
	schedules []domain.Schedule
	byName    map[string]domain.Schedule
	prices    map[string]domain.PriceEntry
	types     []string
}

func New(schedules []domain.Schedule, prices map[string]domain.PriceEntry) (*Catalog, error) {
	if len(schedules) == 0 {
		return nil, fmt.Errorf("at least one schedule must be defined")
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("at least one resource type must be priced")
	}

	c := &Catalog{
		byName: make(map[string]domain.Schedule, len(schedules)),
		prices: make(map[string]domain.PriceEntry, len(prices)),
	}
	for _, s := range schedules {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byName[s.Name]; exists {
			return nil, fmt.Errorf("duplicate schedule: %s", s.Name)
		}
		c.byName[s.Name] = s
		c.schedules = append(c.schedules, s)
	}
	for rt, p := range prices {
		if rt == "" {
			return nil, fmt.Errorf("resource type key must not be empty")
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("resource type %s: %w", rt, err)
		}
		c.prices[rt] = p
		c.types = append(c.types, rt)
	}
	return c, nil
}

// Schedules returns the catalog's schedules in definition order.
func (c *Catalog) Schedules() []domain.Schedule {
	out := make([]domain.Schedule, len(c.schedules))
	copy(out, c.schedules)
	return out
}

func (c *Catalog) Schedule(name string) (domain.Schedule, bool) {
	s, ok := c.byName[name]
	return s, ok
}

func (c *Catalog) Price(resourceType string) (domain.PriceEntry, bool) {
	p, ok := c.prices[resourceType]
	return p, ok
}

func (c *Catalog) ResourceTypes() []string {
	out := make([]string, len(c.types))
	copy(out, c.types)
	return out
}

func coldPrice(v float64) *float64 { return &v }

// Default returns the built-in catalog used when no config file is given.
func Default() *Catalog {
	day := 24 * time.Hour
	c, err := New(
		[]domain.Schedule{
			{Name: "intraday", Interval: domain.Interval{Fixed: 4 * time.Hour}, Retention: 7 * day},
			{Name: "daily", Interval: domain.Interval{Fixed: day}, Retention: 30 * day, ColdAfter: 5 * day},
			{Name: "weekly", Interval: domain.Interval{Fixed: 7 * day}, Retention: 90 * day, ColdAfter: 5 * day},
			{Name: "monthly_180", Interval: domain.Interval{Months: 1}, Retention: 180 * day, ColdAfter: 5 * day},
			{Name: "monthly_365", Interval: domain.Interval{Months: 1}, Retention: 365 * day, ColdAfter: 5 * day},
			{Name: "yearly", Interval: domain.Interval{Years: 1}, Retention: 5 * 365 * day, ColdAfter: 5 * day},
		},
		map[string]domain.PriceEntry{
			"EBS": {Warm: 0.05, Cold: coldPrice(0.0125)},
			"EFS": {Warm: 0.05, Cold: coldPrice(0.01)},
			"RDS": {Warm: 0.095},
		},
	)
	if err != nil {
		panic(fmt.Sprintf("default catalog is invalid: %v", err))
	}
	return c
}
