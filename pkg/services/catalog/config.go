package catalog

import (
	"fmt"

	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

type scheduleConfig struct {
	Name      string `mapstructure:"name"`
	Interval  string `mapstructure:"interval"`
	Retention string `mapstructure:"retention"`
	ColdAfter string `mapstructure:"cold_after"`
}

type priceConfig struct {
	Warm float64  `mapstructure:"warm"`
	Cold *float64 `mapstructure:"cold"`
}

type fileConfig struct {
	Schedules []scheduleConfig       `mapstructure:"schedules"`
	Prices    map[string]priceConfig `mapstructure:"prices"`
}

// Load reads a catalog definition from a YAML file, e.g.
//
//	schedules:
//	  - name: daily
//	    interval: 1d
//	    retention: 30d
//	    cold_after: 5d
//	prices:
//	  EBS: {warm: 0.05, cold: 0.0125}
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cfg fileConfig
	if err := v.UnmarshalExact(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	schedules := make([]domain.Schedule, 0, len(cfg.Schedules))
	for _, sc := range cfg.Schedules {
		s, err := buildSchedule(sc)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	prices := make(map[string]domain.PriceEntry, len(cfg.Prices))
	for rt, pc := range cfg.Prices {
		prices[rt] = domain.PriceEntry{Warm: pc.Warm, Cold: pc.Cold}
	}

	return New(schedules, prices)
}

func buildSchedule(sc scheduleConfig) (domain.Schedule, error) {
	iv, err := domain.ParseInterval(sc.Interval)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("schedule %q: %w", sc.Name, err)
	}
	retention, err := domain.ParseSpan(sc.Retention)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("schedule %q: %w", sc.Name, err)
	}
	s := domain.Schedule{Name: sc.Name, Interval: iv, Retention: retention}
	if sc.ColdAfter != "" {
		coldAfter, err := domain.ParseSpan(sc.ColdAfter)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("schedule %q: %w", sc.Name, err)
		}
		s.ColdAfter = coldAfter
	}
	return s, nil
}
