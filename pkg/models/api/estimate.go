package api

import "time"

type Resource struct {
	Type   string  `json:"type"`
	SizeGB float64 `json:"size_gb"`
	Job    string  `json:"job,omitempty"`
}

type MonthlyCostItem struct {
	Month     int                `json:"month"`
	Cost      float64            `json:"cost"`
	Breakdown map[string]float64 `json:"breakdown"`
}

type CostResult struct {
	Resource     Resource          `json:"resource"`
	MonthlyCosts []MonthlyCostItem `json:"monthly_costs"`
}

type Schedule struct {
	Name      string `json:"name"`
	Interval  string `json:"interval"`
	Retention string `json:"retention"`
	ColdAfter string `json:"cold_after,omitempty"`
}

type ResourceType struct {
	Type      string   `json:"type"`
	WarmPrice float64  `json:"warm_price"`
	ColdPrice *float64 `json:"cold_price,omitempty"`
}

type VolumeSnapshot struct {
	SnapshotID  string    `json:"snapshot_id"`
	VolumeID    string    `json:"volume_id"`
	StartTime   time.Time `json:"start_time"`
	State       string    `json:"state"`
	Progress    string    `json:"progress"`
	VolumeSize  int32     `json:"volume_size"`
	Description string    `json:"description,omitempty"`
}
