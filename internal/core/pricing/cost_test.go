package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astra-cloud/astra/internal/core/catalog"
	"github.com/astra-cloud/astra/internal/core/model"
)

func defaultScope() model.Scope {
	return model.Scope{
		Users:        1000,
		TrafficLevel: 3,
		DataVolumeGB: 100,
		Regions:      1,
		Availability: 99.9,
	}
}

func TestUserMultiplier(t *testing.T) {
	// Non-decreasing step function with breakpoints at the tier bounds.
	assert.Equal(t, 1.0, UserMultiplier(1))
	assert.Equal(t, 1.0, UserMultiplier(999))
	assert.Equal(t, 1.0, UserMultiplier(1000))
	assert.Equal(t, 1.5, UserMultiplier(1001))
	assert.Equal(t, 1.5, UserMultiplier(10_000))
	assert.Equal(t, 2.5, UserMultiplier(10_001))
	assert.Equal(t, 4.0, UserMultiplier(1_000_000))
	assert.Equal(t, 6.0, UserMultiplier(1_000_001))
	assert.Equal(t, 6.0, UserMultiplier(10_000_000))

	prev := 0.0
	for _, users := range []int{1, 10, 999, 1000, 5000, 10000, 99999, 100000, 999999, 1000000, 2000000} {
		m := UserMultiplier(users)
		assert.GreaterOrEqual(t, m, prev, "users=%d", users)
		prev = m
	}
}

func TestTrafficMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, TrafficMultiplier(1))
	assert.Equal(t, 2.0, TrafficMultiplier(3))
	assert.Equal(t, 5.0, TrafficMultiplier(5))
	// Out-of-range levels fall back to the medium multiplier.
	assert.Equal(t, 2.0, TrafficMultiplier(0))
	assert.Equal(t, 2.0, TrafficMultiplier(9))
}

func TestRegionMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, RegionMultiplier(1))
	assert.Equal(t, 1.3, RegionMultiplier(2))
	assert.Equal(t, 1.5, RegionMultiplier(3))
	assert.Equal(t, 1.8, RegionMultiplier(4))
	assert.Equal(t, 1.8, RegionMultiplier(12))
	assert.Equal(t, 1.0, RegionMultiplier(0))
}

func TestAvailabilityMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, AvailabilityMultiplier(99.0))
	assert.Equal(t, 1.2, AvailabilityMultiplier(99.9))
	assert.Equal(t, 1.4, AvailabilityMultiplier(99.95))
	assert.Equal(t, 1.7, AvailabilityMultiplier(99.99))
	assert.Equal(t, 2.5, AvailabilityMultiplier(99.999))
	// Anything beyond the known tiers prices at the top tier.
	assert.Equal(t, 2.5, AvailabilityMultiplier(99.9999))
	// Low requests land in the cheapest tier.
	assert.Equal(t, 1.0, AvailabilityMultiplier(95.0))
}

func TestComponentCost(t *testing.T) {
	calc := NewCalculator(catalog.New())

	t.Run("free tier never scales", func(t *testing.T) {
		scope := defaultScope()
		scope.Users = 5_000_000
		scope.TrafficLevel = 5

		base, scaled := calc.ComponentCost("nextjs", scope)
		assert.Equal(t, 0.0, base)
		assert.Equal(t, 0.0, scaled)
	})

	t.Run("unknown component prices at zero", func(t *testing.T) {
		base, scaled := calc.ComponentCost("quantum_db", defaultScope())
		assert.Equal(t, 0.0, base)
		assert.Equal(t, 0.0, scaled)
	})

	t.Run("database scaling includes data volume", func(t *testing.T) {
		// postgresql: 25 * 1.0 * 2.0 * 1.0 * 1.2 + 100*0.023 = 60 + 2.3
		base, scaled := calc.ComponentCost("postgresql", defaultScope())
		assert.Equal(t, 25.0, base)
		assert.Equal(t, 62.3, scaled)
	})

	t.Run("hosting ignores data volume", func(t *testing.T) {
		// aws_ec2: 50 * 1.0 * 2.0 * 1.0 * 1.2
		_, scaled := calc.ComponentCost("aws_ec2", defaultScope())
		assert.Equal(t, 120.0, scaled)
	})

	t.Run("ai_ml scales with users and traffic only", func(t *testing.T) {
		scope := defaultScope()
		scope.Regions = 4
		scope.Availability = 99.999

		// openai: 50 * 1.0 * 2.0 regardless of regions/availability
		_, scaled := calc.ComponentCost("openai", scope)
		assert.Equal(t, 100.0, scaled)
	})

	t.Run("monitoring scales with regions and availability only", func(t *testing.T) {
		scope := defaultScope()
		scope.Users = 500_000
		scope.Regions = 2

		// datadog: 60 * 1.3 * 1.2
		_, scaled := calc.ComponentCost("datadog", scope)
		assert.Equal(t, 93.6, scaled)
	})
}

func TestArchitectureCost(t *testing.T) {
	calc := NewCalculator(catalog.New())

	t.Run("total equals rounded sum of entries", func(t *testing.T) {
		ids := []string{"nextjs", "fastapi", "postgresql", "redis", "aws_s3", "vercel", "datadog"}
		estimate := calc.ArchitectureCost(ids, defaultScope())

		var sum float64
		for _, entry := range estimate.Breakdown {
			sum += entry.ScaledCost
		}
		assert.InDelta(t, sum, estimate.Total, 0.005)
		assert.Len(t, estimate.Breakdown, len(ids))
	})

	t.Run("unknown ids are skipped silently", func(t *testing.T) {
		estimate := calc.ArchitectureCost([]string{"postgresql", "made_up", "redis"}, defaultScope())
		assert.Len(t, estimate.Breakdown, 2)
	})

	t.Run("empty input yields zero total", func(t *testing.T) {
		estimate := calc.ArchitectureCost(nil, defaultScope())
		assert.Equal(t, 0.0, estimate.Total)
		assert.Empty(t, estimate.Breakdown)
	})
}
