// Package carbon estimates the monthly energy use and CO2 emissions of a
// generated architecture. It shares the cost model's scope philosophy but
// runs its own scaling path over the region intensity and power-draw tables.
package carbon

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/core/pricing"
)

// hoursPerMonth is the average month length used across the industry for
// always-on workloads.
const hoursPerMonth = 730.0

// Estimator turns architectures into carbon reports. Stateless; safe for
// concurrent use.
type Estimator struct {
	pricing *pricing.Calculator
}

func NewEstimator(calc *pricing.Calculator) *Estimator {
	return &Estimator{pricing: calc}
}

// Estimate computes per-node energy and emissions for a deployment region.
//
//	energy (kWh/month) = scaled power (W) x 730 h / 1000
//	carbon (kg/month)  = energy x intensity (gCO2/kWh) / 1000
//
// Per-entry values are rounded to 4 decimals; the totals are the 4-decimal
// rounding of the unrounded sums, so they agree with the entry sum to
// within rounding tolerance.
func Estimate(nodes []model.Node, scope model.Scope, region string) (model.CarbonMetrics, []model.ComponentCarbon) {
	intensity := Intensity(region)

	trafficMul := float64(scope.TrafficLevel) / 3.0
	userMul := math.Log10(float64(scope.Users)+1) / 2.0

	breakdown := make([]model.ComponentCarbon, 0, len(nodes))
	var totalEnergy, totalCarbon float64

	for _, node := range nodes {
		cat := node.Data.Category
		scaledPower := PowerDraw(cat) * math.Max(trafficMul, 0.5) * math.Max(userMul, 0.5)
		// ML inference tracks traffic far more steeply than serving does.
		if cat == "ml" {
			scaledPower *= trafficMul
		}

		energyKWh := scaledPower * hoursPerMonth / 1000.0
		carbonKg := energyKWh * intensity / 1000.0

		breakdown = append(breakdown, model.ComponentCarbon{
			ComponentID:    node.Data.ComponentID,
			ComponentName:  node.Data.Label,
			Category:       cat,
			EnergyKWh:      round4(energyKWh),
			CarbonKg:       round4(carbonKg),
			PowerDrawWatts: round2(scaledPower),
		})

		totalEnergy += energyKWh
		totalCarbon += carbonKg
	}

	metrics := model.CarbonMetrics{
		EnergyKWh:       round4(totalEnergy),
		CarbonKg:        round4(totalCarbon),
		CarbonIntensity: intensity,
		Region:          region,
	}
	return metrics, breakdown
}

// Report wraps Estimate into a persistable carbon report, pricing the same
// node set through the cost model.
func (e *Estimator) Report(arch model.Architecture, region, userID string) model.CarbonReport {
	metrics, breakdown := Estimate(arch.Nodes, arch.Scope, region)

	ids := make([]string, 0, len(arch.Nodes))
	for _, node := range arch.Nodes {
		ids = append(ids, node.Data.ComponentID)
	}
	metrics.CostUSD = e.pricing.ArchitectureCost(ids, arch.Scope).Total

	return model.CarbonReport{
		ReportID:           uuid.New().String(),
		Architecture:       arch,
		Metrics:            metrics,
		ComponentBreakdown: breakdown,
		CreatedAt:          time.Now().UTC(),
		UserID:             userID,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
