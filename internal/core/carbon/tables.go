package carbon

import "github.com/astra-cloud/astra/internal/core/model"

// regionIntensity maps cloud regions to grid carbon intensity in gCO2/kWh.
// Sources: Electricity Maps, IEA, provider sustainability reports. Those
// literal values are load-bearing: stored reports are fingerprinted, so the
// table must not drift between releases.
var regionIntensity = map[string]float64{
	// AWS regions
	"us-east-1":      379.0, // Virginia
	"us-east-2":      531.0, // Ohio
	"us-west-1":      210.0, // N. California
	"us-west-2":      102.0, // Oregon (hydro)
	"eu-west-1":      296.0, // Ireland
	"eu-west-2":      228.0, // London
	"eu-central-1":   338.0, // Frankfurt
	"eu-north-1":     8.0,   // Stockholm (hydro/nuclear)
	"ap-southeast-1": 431.0, // Singapore
	"ap-northeast-1": 465.0, // Tokyo
	"ap-south-1":     708.0, // Mumbai
	"sa-east-1":      61.0,  // Sao Paulo (hydro)
	"ca-central-1":   120.0, // Canada
	// GCP regions
	"us-central1":   440.0, // Iowa
	"us-east4":      379.0, // Virginia
	"europe-west1":  80.0,  // Belgium
	"europe-north1": 8.0,   // Finland
	"asia-east1":    509.0, // Taiwan
	// Azure regions
	"eastus":      379.0,
	"westus":      210.0,
	"westeurope":  296.0,
	"northeurope": 296.0,
}

// defaultIntensity applies to regions missing from the table.
const defaultIntensity = 400.0

// powerDraw estimates a running component's draw in watts by category.
// Categories missing from the table fall back to defaultPowerDraw.
var powerDraw = map[model.Category]float64{
	"backend":    50.0,
	"frontend":   5.0, // CDN/edge only
	"database":   80.0,
	"hosting":    60.0,
	"ml":         300.0,
	"auth":       10.0,
	"cache":      30.0,
	"queue":      25.0,
	"storage":    15.0,
	"cicd":       20.0,
	"monitoring": 10.0,
	"search":     60.0,
}

const defaultPowerDraw = 30.0

// Intensity returns the carbon intensity for a region, falling back to the
// documented default for unknown regions.
func Intensity(region string) float64 {
	if v, ok := regionIntensity[region]; ok {
		return v
	}
	return defaultIntensity
}

// Regions returns a copy of the full region intensity table.
func Regions() map[string]float64 {
	out := make(map[string]float64, len(regionIntensity))
	for k, v := range regionIntensity {
		out[k] = v
	}
	return out
}

// PowerDraw returns the base wattage for a category.
func PowerDraw(cat model.Category) float64 {
	if v, ok := powerDraw[cat]; ok {
		return v
	}
	return defaultPowerDraw
}
