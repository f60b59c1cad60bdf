package model

import "time"

// SustainabilityScore grades one architecture evaluation against a previous
// one. Score is capped at 100; GreenPoints feed the reward ledger.
type SustainabilityScore struct {
	Score          float64  `json:"score"`
	CarbonSavedKg  float64  `json:"carbon_saved_kg"`
	EnergySavedKWh float64  `json:"energy_saved_kwh"`
	GreenPoints    int      `json:"green_points"`
	Improvements   []string `json:"improvements"`
}

// BadgeDefinition describes an earnable sustainability badge. A badge is
// granted either by crossing ThresholdPoints or by a named condition
// tracked outside the points total.
type BadgeDefinition struct {
	BadgeID            string `json:"badge_id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Icon               string `json:"icon"`
	ThresholdPoints    int    `json:"threshold_points,omitempty"`
	ThresholdCondition string `json:"threshold_condition,omitempty"`
}

// GreenPointsTransaction records one points award or deduction.
type GreenPointsTransaction struct {
	TxID      string    `json:"tx_id"`
	UserID    string    `json:"user_id"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// UserBadge is a badge a user has earned.
type UserBadge struct {
	BadgeID  string          `json:"badge_id"`
	Badge    BadgeDefinition `json:"badge"`
	EarnedAt time.Time       `json:"earned_at"`
}

// GreenUser aggregates a user's reward state.
type GreenUser struct {
	UserID             string  `json:"user_id"`
	TotalPoints        int     `json:"total_points"`
	BadgesCount        int     `json:"badges_count"`
	TotalCarbonSavedKg float64 `json:"total_carbon_saved_kg"`
}

// LeaderboardEntry is one row of the global points leaderboard.
type LeaderboardEntry struct {
	UserID        string   `json:"user_id"`
	TotalPoints   int      `json:"total_points"`
	Rank          int      `json:"rank"`
	BadgesCount   int      `json:"badges_count"`
	CarbonSavedKg float64  `json:"carbon_saved_kg"`
	BadgeIDs      []string `json:"badge_ids"`
}
