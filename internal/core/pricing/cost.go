// Package pricing implements the monthly cost model. Every estimate is the
// component's base cost scaled by scope-derived multipliers, with a
// category-specific combination rule.
package pricing

import (
	"math"

	"github.com/astra-cloud/astra/internal/core/catalog"
	"github.com/astra-cloud/astra/internal/core/model"
)

// dataCostPerGB follows S3 standard pricing and applies to database and
// storage categories only.
const dataCostPerGB = 0.023

type userTier struct {
	maxUsers   int
	multiplier float64
}

// userTiers is a step function: the first tier whose bound covers the user
// count wins. Beyond the largest bound the multiplier is 6.0.
var userTiers = []userTier{
	{1_000, 1.0},
	{10_000, 1.5},
	{100_000, 2.5},
	{1_000_000, 4.0},
}

var trafficMultipliers = map[int]float64{
	1: 1.0,
	2: 1.5,
	3: 2.0,
	4: 3.0,
	5: 5.0,
}

var regionMultipliers = map[int]float64{
	1: 1.0,
	2: 1.3,
	3: 1.5,
}

type availabilityTier struct {
	sla        float64
	multiplier float64
}

// availabilityTiers are checked in ascending order; the smallest SLA tier
// covering the requested availability wins.
var availabilityTiers = []availabilityTier{
	{99.0, 1.0},
	{99.9, 1.2},
	{99.95, 1.4},
	{99.99, 1.7},
	{99.999, 2.5},
}

// Calculator prices components against a catalog. It is stateless and safe
// for concurrent use.
type Calculator struct {
	catalog *catalog.Catalog
}

func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// UserMultiplier returns the scaling multiplier for a total user count.
func UserMultiplier(users int) float64 {
	for _, tier := range userTiers {
		if users <= tier.maxUsers {
			return tier.multiplier
		}
	}
	return 6.0
}

// TrafficMultiplier returns the multiplier for a traffic level (1-5).
// Unknown levels default to 2.0.
func TrafficMultiplier(level int) float64 {
	if m, ok := trafficMultipliers[level]; ok {
		return m
	}
	return 2.0
}

// RegionMultiplier returns the multiplier for a multi-region deployment.
// Four or more regions cost 1.8x; unknown counts default to 1.0.
func RegionMultiplier(regions int) float64 {
	if regions >= 4 {
		return 1.8
	}
	if m, ok := regionMultipliers[regions]; ok {
		return m
	}
	return 1.0
}

// AvailabilityMultiplier returns the multiplier for an availability SLA.
// Requests above the highest known tier cost 2.5x.
func AvailabilityMultiplier(availability float64) float64 {
	for _, tier := range availabilityTiers {
		if availability <= tier.sla {
			return tier.multiplier
		}
	}
	return 2.5
}

// ComponentCost computes the base and scaled monthly cost of one component.
// Unknown ids and free-tier components both price at (0, 0).
func (c *Calculator) ComponentCost(componentID string, scope model.Scope) (base, scaled float64) {
	comp, ok := c.catalog.Lookup(componentID)
	if !ok || comp.BaseCost == 0 {
		return 0, 0
	}

	userMult := UserMultiplier(scope.Users)
	trafficMult := TrafficMultiplier(scope.TrafficLevel)
	regionMult := RegionMultiplier(scope.Regions)
	availabilityMult := AvailabilityMultiplier(scope.Availability)

	base = comp.BaseCost

	switch comp.Category {
	case model.CategoryDatabase, model.CategoryStorage:
		// Data stores additionally charge for held volume.
		scaled = base*userMult*trafficMult*regionMult*availabilityMult + scope.DataVolumeGB*dataCostPerGB
	case model.CategoryHosting, model.CategoryInfrastructure:
		scaled = base * userMult * trafficMult * regionMult * availabilityMult
	case model.CategoryAIML, model.CategorySearch:
		scaled = base * userMult * trafficMult
	case model.CategoryMonitoring, model.CategoryAnalytics:
		scaled = base * regionMult * availabilityMult
	default:
		scaled = base * userMult * trafficMult
	}

	return base, round2(scaled)
}

// ArchitectureCost prices a whole component list. Unknown ids are skipped.
// The total is the rounded sum of the already-rounded per-entry values.
func (c *Calculator) ArchitectureCost(componentIDs []string, scope model.Scope) model.CostEstimate {
	estimate := model.CostEstimate{Breakdown: []model.CostBreakdown{}}

	for _, id := range componentIDs {
		comp, ok := c.catalog.Lookup(id)
		if !ok {
			continue
		}

		base, scaled := c.ComponentCost(id, scope)
		estimate.Breakdown = append(estimate.Breakdown, model.CostBreakdown{
			Category:    comp.Category,
			Component:   comp.Name,
			ComponentID: id,
			BaseCost:    base,
			ScaledCost:  scaled,
		})
		estimate.Total += scaled
	}

	estimate.Total = round2(estimate.Total)
	return estimate
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
