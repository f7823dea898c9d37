package domain

import "fmt"

// PriceEntry holds the per GB-month storage rates for one resource type.
// Cold is nil for types without a cold tier: such resources bill every
// recovery point at the warm rate for its whole retention, regardless of
// any schedule's cold-after offset.
type PriceEntry struct {
	Warm float64
	Cold *float64
}

func (p PriceEntry) SupportsCold() bool {
	return p.Cold != nil
}

func (p PriceEntry) ColdRate() float64 {
	if p.Cold == nil {
		return 0
	}
	return *p.Cold
}

func (p PriceEntry) Validate() error {
	if p.Warm < 0 {
		return fmt.Errorf("warm price must not be negative")
	}
	if p.Cold != nil && *p.Cold < 0 {
		return fmt.Errorf("cold price must not be negative")
	}
	return nil
}
