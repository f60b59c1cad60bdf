package model

// CostBreakdown is one component's contribution to the monthly estimate.
type CostBreakdown struct {
	Category    Category `json:"category"`
	Component   string   `json:"component"`
	ComponentID string   `json:"componentId"`
	BaseCost    float64  `json:"baseCost"`
	ScaledCost  float64  `json:"scaledCost"`
}

// CostEstimate totals the per-component breakdown. Total is always the
// 2-decimal rounding of the sum of the (already rounded) breakdown entries.
type CostEstimate struct {
	Total     float64         `json:"total"`
	Breakdown []CostBreakdown `json:"breakdown"`
}
