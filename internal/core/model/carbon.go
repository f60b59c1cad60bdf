package model

import "time"

// ComponentCarbon is the per-node slice of a carbon report.
type ComponentCarbon struct {
	ComponentID    string   `json:"component_id"`
	ComponentName  string   `json:"component_name"`
	Category       Category `json:"category"`
	EnergyKWh      float64  `json:"energy_kwh"`
	CarbonKg       float64  `json:"carbon_kg"`
	PowerDrawWatts float64  `json:"power_draw_watts"`
}

// CarbonMetrics are the architecture-level totals of a report.
type CarbonMetrics struct {
	EnergyKWh       float64 `json:"energy_kwh"`
	CarbonKg        float64 `json:"carbon_kg"`
	CarbonIntensity float64 `json:"carbon_intensity"`
	Region          string  `json:"region"`
	CostUSD         float64 `json:"cost_usd"`
}

// CarbonReport estimates the monthly energy use and emissions of an
// architecture deployed in a given region.
type CarbonReport struct {
	ReportID           string            `json:"report_id"`
	Architecture       Architecture      `json:"architecture_json"`
	Metrics            CarbonMetrics     `json:"metrics"`
	ComponentBreakdown []ComponentCarbon `json:"component_breakdown"`
	CreatedAt          time.Time         `json:"created_at"`
	UserID             string            `json:"user_id,omitempty"`
}
