package incentive

import "github.com/astra-cloud/astra/internal/core/model"

// badgeDefinitions is the fixed badge catalog, ordered by ambition.
var badgeDefinitions = []model.BadgeDefinition{
	{
		BadgeID:         "green_starter",
		Name:            "Green Starter",
		Description:     "Earned your first green points by reducing carbon emissions.",
		Icon:            "🌱",
		ThresholdPoints: 100,
	},
	{
		BadgeID:         "eco_developer",
		Name:            "Eco Developer",
		Description:     "Consistently making green computing choices.",
		Icon:            "🌿",
		ThresholdPoints: 500,
	},
	{
		BadgeID:         "carbon_champion",
		Name:            "Carbon Champion",
		Description:     "Major sustainability impact through code optimization.",
		Icon:            "🌳",
		ThresholdPoints: 1000,
	},
	{
		BadgeID:            "region_optimizer",
		Name:               "Region Optimizer",
		Description:        "Chose low-carbon cloud regions 5 or more times.",
		Icon:               "♻️",
		ThresholdCondition: "region_optimizations >= 5",
	},
	{
		BadgeID:            "budget_keeper",
		Name:               "Budget Keeper",
		Description:        "Stayed under carbon budget 3 or more times.",
		Icon:               "⚡",
		ThresholdCondition: "budget_kept >= 3",
	},
	{
		BadgeID:         "sustainability_pioneer",
		Name:            "Sustainability Pioneer",
		Description:     "Top 10 on the global leaderboard.",
		Icon:            "🏆",
		ThresholdPoints: 5000,
	},
}

// Badges returns the full badge catalog.
func Badges() []model.BadgeDefinition {
	return badgeDefinitions
}

// BadgeByID resolves one badge definition.
func BadgeByID(badgeID string) (model.BadgeDefinition, bool) {
	for _, badge := range badgeDefinitions {
		if badge.BadgeID == badgeID {
			return badge, true
		}
	}
	return model.BadgeDefinition{}, false
}

// EligibleBadges lists threshold badges a user qualifies for but has not
// earned yet. Condition badges are tracked by counters elsewhere and are
// never returned here.
func EligibleBadges(totalPoints int, earned map[string]bool) []model.BadgeDefinition {
	var eligible []model.BadgeDefinition
	for _, badge := range badgeDefinitions {
		if earned[badge.BadgeID] || badge.ThresholdPoints == 0 {
			continue
		}
		if totalPoints >= badge.ThresholdPoints {
			eligible = append(eligible, badge)
		}
	}
	return eligible
}
