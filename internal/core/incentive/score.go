// Package incentive grades architecture evaluations for sustainability and
// defines the badge catalog. Scoring is pure computation; persistence of
// points and badges lives in the store layer.
package incentive

import (
	"fmt"
	"math"

	"github.com/astra-cloud/astra/internal/core/carbon"
	"github.com/astra-cloud/astra/internal/core/model"
)

const (
	baseScore  = 15.0
	basePoints = 10
)

// Score computes a sustainability score for an evaluation against an
// optional previous one. previousCarbonKg <= 0 means no baseline exists.
//
// Scoring bands:
//   - carbon reduction, up to 60 points (proportional to percent reduced)
//   - low-carbon region choice, up to 25 points
//   - base of 15 points for evaluating at all
func Score(currentCarbonKg, previousCarbonKg float64, region, previousRegion string) model.SustainabilityScore {
	score := baseScore
	greenPoints := basePoints
	var carbonSaved, energySaved float64
	improvements := []string{}

	if previousCarbonKg > 0 {
		reductionPct := (previousCarbonKg - currentCarbonKg) / previousCarbonKg * 100

		if reductionPct > 0 {
			// 10% reduction = 20 pts, 25% = 40 pts, 50%+ caps at 60.
			score += math.Min(60, reductionPct*1.2)
			carbonSaved = previousCarbonKg - currentCarbonKg
			energySaved = carbonSaved * 2.5

			greenPoints += int(reductionPct * 5)
			improvements = append(improvements,
				fmt.Sprintf("Carbon reduced by %.1f%% (%.2f kgCO2 saved)", reductionPct, carbonSaved))
		}
	}

	intensity := carbon.Intensity(region)
	switch {
	case intensity <= 100:
		score += 25
		greenPoints += 25
		improvements = append(improvements,
			fmt.Sprintf("Using very low-carbon region (%s: %g gCO2/kWh)", region, intensity))
	case intensity <= 250:
		score += 15
		greenPoints += 15
		improvements = append(improvements,
			fmt.Sprintf("Using low-carbon region (%s: %g gCO2/kWh)", region, intensity))
	case intensity <= 400:
		score += 5
		greenPoints += 5
	}

	if previousRegion != "" {
		prevIntensity := carbon.Intensity(previousRegion)
		if intensity < prevIntensity {
			greenPoints += int(math.Min(15, (prevIntensity-intensity)/20))
			improvements = append(improvements,
				fmt.Sprintf("Switched to greener region (%s -> %s)", previousRegion, region))
		}
	}

	return model.SustainabilityScore{
		Score:          math.Min(100, round1(score)),
		CarbonSavedKg:  round4(carbonSaved),
		EnergySavedKWh: round4(energySaved),
		GreenPoints:    greenPoints,
		Improvements:   improvements,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
