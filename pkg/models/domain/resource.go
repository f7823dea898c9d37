package domain

// Resource describes one protected storage resource to forecast.
// Job is the name of a single backup schedule to restrict the forecast
// to; empty means every schedule in the catalog applies.
type Resource struct {
	Type   string
	SizeGB float64
	Job    string
}
