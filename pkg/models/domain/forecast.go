package domain

// MonthlyCost is the projected backup storage bill for one forward
// calendar month. Month 1 is the month containing the forecast anchor.
// Breakdown maps schedule name to that schedule's share of the cost.
type MonthlyCost struct {
	Month     int
	Cost      float64
	Breakdown map[string]float64
}

// CostForecast pairs the input resource with its 12 forward monthly
// costs, month-ascending.
type CostForecast struct {
	Resource     Resource
	MonthlyCosts []MonthlyCost
}
