package forecast

import (
	"time"

	"github.com/de-tools/backup-atlas/pkg/models/domain"
)

const day = 24 * time.Hour

// tierDays is the billable day count of one recovery point inside a
// window, split by storage tier.
type tierDays struct {
	warm int
	cold int
}

// enumerate walks the schedule's recovery points intersecting the
// half-open window [winStart, winEnd). Points are generated by stepping
// the cadence forward from the anchor instant. coldPriced tells whether
// the resource type bills a cold tier at all; without it a point still
// stops accruing warm cost at its cold-after offset but the cold days
// are never billed.
func enumerate(s domain.Schedule, anchor, winStart, winEnd time.Time, coldPriced bool) []tierDays {
	rp := anchor
	for rp.Before(winStart) {
		rp = s.Interval.Next(rp)
	}

	var points []tierDays
	for rp.Before(winEnd) {
		points = append(points, pointDays(s, rp, winStart, winEnd, coldPriced))
		rp = s.Interval.Next(rp)
	}
	return points
}

func pointDays(s domain.Schedule, rp, winStart, winEnd time.Time, coldPriced bool) tierDays {
	warmSpan := s.Retention
	if s.ColdAfter > 0 {
		warmSpan = s.ColdAfter
	}

	// A point never accrues past its deletion at rp+retention.
	warmEnd := minTime(rp.Add(warmSpan), rp.Add(s.Retention), winEnd)
	td := tierDays{warm: clampDays(maxTime(rp, winStart), warmEnd)}

	if s.ColdAfter > 0 && coldPriced {
		coldStart := rp.Add(s.ColdAfter)
		if coldStart.Before(winEnd) {
			coldEnd := minTime(rp.Add(s.Retention), winEnd)
			td.cold = clampDays(maxTime(coldStart, winStart), coldEnd)
		}
	}
	return td
}

// windowCost prorates one schedule's recovery points over a window:
// each point contributes its tier occupancy as a fraction of the
// window's days, times the size and the tier's GB-month rate.
func windowCost(
	s domain.Schedule,
	anchor, winStart, winEnd time.Time,
	windowDays int,
	sizeGB float64,
	price domain.PriceEntry,
) float64 {
	var total float64
	for _, td := range enumerate(s, anchor, winStart, winEnd, price.SupportsCold()) {
		total += sizeGB * (float64(td.warm) / float64(windowDays)) * price.Warm
		if price.SupportsCold() {
			total += sizeGB * (float64(td.cold) / float64(windowDays)) * price.ColdRate()
		}
	}
	return total
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / day)
}

func clampDays(a, b time.Time) int {
	if d := daysBetween(a, b); d > 0 {
		return d
	}
	return 0
}

func minTime(ts ...time.Time) time.Time {
	m := ts[0]
	for _, t := range ts[1:] {
		if t.Before(m) {
			m = t
		}
	}
	return m
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
