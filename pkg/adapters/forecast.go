package adapters

import (
	"fmt"
	"maps"
	"time"

	"github.com/de-tools/backup-atlas/pkg/models/api"
	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/samber/lo"
)

func MapResourceApiToDomain(r api.Resource) domain.Resource {
	return domain.Resource{Type: r.Type, SizeGB: r.SizeGB, Job: r.Job}
}

func MapResourceDomainToApi(r domain.Resource) api.Resource {
	return api.Resource{Type: r.Type, SizeGB: r.SizeGB, Job: r.Job}
}

func MapMonthlyCostDomainToApi(m domain.MonthlyCost) api.MonthlyCostItem {
	return api.MonthlyCostItem{
		Month:     m.Month,
		Cost:      m.Cost,
		Breakdown: maps.Clone(m.Breakdown),
	}
}

func MapForecastDomainToApi(f domain.CostForecast) api.CostResult {
	return api.CostResult{
		Resource:     MapResourceDomainToApi(f.Resource),
		MonthlyCosts: lo.Map(f.MonthlyCosts, func(m domain.MonthlyCost, _ int) api.MonthlyCostItem {
			return MapMonthlyCostDomainToApi(m)
		}),
	}
}

func MapScheduleDomainToApi(s domain.Schedule) api.Schedule {
	out := api.Schedule{
		Name:      s.Name,
		Interval:  s.Interval.String(),
		Retention: formatSpan(s.Retention),
	}
	if s.ColdAfter > 0 {
		out.ColdAfter = formatSpan(s.ColdAfter)
	}
	return out
}

func MapSnapshotDomainToApi(s domain.VolumeSnapshot) api.VolumeSnapshot {
	return api.VolumeSnapshot{
		SnapshotID:  s.SnapshotID,
		VolumeID:    s.VolumeID,
		StartTime:   s.StartTime,
		State:       s.State,
		Progress:    s.Progress,
		VolumeSize:  s.VolumeSize,
		Description: s.Description,
	}
}

func formatSpan(d time.Duration) string {
	if d%(24*time.Hour) == 0 {
		return fmt.Sprintf("%dd", d/(24*time.Hour))
	}
	return fmt.Sprintf("%dh", d/time.Hour)
}
