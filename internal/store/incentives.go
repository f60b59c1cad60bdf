package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/astra-cloud/astra/internal/core/incentive"
	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/driver"
)

// AwardPoints records a points transaction and bumps the user's running
// totals, creating the user on first award. Negative points deduct.
func (s *Store) AwardPoints(ctx context.Context, userID string, points int, reason, category string, carbonSavedKg float64) (model.GreenPointsTransaction, error) {
	tx := model.GreenPointsTransaction{
		TxID:      uuid.New().String(),
		UserID:    userID,
		Points:    points,
		Reason:    reason,
		Category:  category,
		Timestamp: time.Now().UTC(),
	}

	_, err := s.driver.ExecuteQuery(ctx, driver.SavePointsTxQuery, map[string]interface{}{
		"id":        tx.TxID,
		"user_id":   tx.UserID,
		"points":    int64(tx.Points),
		"reason":    tx.Reason,
		"category":  tx.Category,
		"timestamp": tx.Timestamp.Format(time.RFC3339),
	})
	if err != nil {
		return model.GreenPointsTransaction{}, fmt.Errorf("failed to record transaction: %w", err)
	}

	_, err = s.driver.ExecuteQuery(ctx, driver.UpsertUserPointsQuery, map[string]interface{}{
		"user_id":         userID,
		"points":          int64(points),
		"carbon_saved_kg": carbonSavedKg,
		"now":             tx.Timestamp.Format(time.RFC3339),
	})
	if err != nil {
		return model.GreenPointsTransaction{}, fmt.Errorf("failed to update user totals: %w", err)
	}

	return tx, nil
}

// UserPoints returns a user's reward state. Unknown users come back with
// zero totals rather than an error.
func (s *Store) UserPoints(ctx context.Context, userID string) (model.GreenUser, error) {
	result, err := s.driver.ExecuteQuery(ctx, driver.GetUserQuery, map[string]interface{}{"user_id": userID})
	if err != nil {
		return model.GreenUser{}, err
	}
	if len(result.Records) == 0 {
		return model.GreenUser{UserID: userID}, nil
	}

	record := result.Records[0]
	totalPoints, _ := record.Get("total_points")
	carbonSaved, _ := record.Get("total_carbon_saved_kg")
	badgesCount, _ := record.Get("badges_count")

	return model.GreenUser{
		UserID:             userID,
		TotalPoints:        asInt(totalPoints),
		BadgesCount:        asInt(badgesCount),
		TotalCarbonSavedKg: asFloat(carbonSaved),
	}, nil
}

// PointsHistory returns a user's transactions newest first.
func (s *Store) PointsHistory(ctx context.Context, userID string, limit int) ([]model.GreenPointsTransaction, error) {
	if limit <= 0 {
		limit = 50
	}

	result, err := s.driver.ExecuteQuery(ctx, driver.PointsHistoryQuery, map[string]interface{}{
		"user_id": userID,
		"limit":   int64(limit),
	})
	if err != nil {
		return nil, err
	}

	txs := make([]model.GreenPointsTransaction, 0, len(result.Records))
	for _, record := range result.Records {
		id, _ := record.Get("id")
		points, _ := record.Get("points")
		reason, _ := record.Get("reason")
		category, _ := record.Get("category")
		timestamp, _ := record.Get("timestamp")

		txs = append(txs, model.GreenPointsTransaction{
			TxID:      asString(id),
			UserID:    userID,
			Points:    asInt(points),
			Reason:    asString(reason),
			Category:  asString(category),
			Timestamp: asTime(timestamp),
		})
	}
	return txs, nil
}

// GrantBadge awards a badge once. It returns the earned badge, or an
// error for unknown badge ids, users, or repeat grants.
func (s *Store) GrantBadge(ctx context.Context, userID, badgeID string) (model.UserBadge, error) {
	def, ok := incentive.BadgeByID(badgeID)
	if !ok {
		return model.UserBadge{}, fmt.Errorf("badge %q not found", badgeID)
	}

	result, err := s.driver.ExecuteQuery(ctx, driver.GrantBadgeQuery, map[string]interface{}{
		"user_id":   userID,
		"badge_id":  badgeID,
		"earned_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return model.UserBadge{}, fmt.Errorf("failed to grant badge: %w", err)
	}
	if len(result.Records) == 0 {
		return model.UserBadge{}, fmt.Errorf("user %q not found", userID)
	}

	created, _ := result.Records[0].Get("created")
	if done, _ := created.(bool); !done {
		return model.UserBadge{}, fmt.Errorf("badge %q already earned", badgeID)
	}

	earnedAt, _ := result.Records[0].Get("earned_at")
	return model.UserBadge{
		BadgeID:  badgeID,
		Badge:    def,
		EarnedAt: asTime(earnedAt),
	}, nil
}

// UserBadges lists the badges a user has earned, oldest first. Stored
// badges whose definition no longer exists are skipped.
func (s *Store) UserBadges(ctx context.Context, userID string) ([]model.UserBadge, error) {
	result, err := s.driver.ExecuteQuery(ctx, driver.UserBadgesQuery, map[string]interface{}{"user_id": userID})
	if err != nil {
		return nil, err
	}

	badges := make([]model.UserBadge, 0, len(result.Records))
	for _, record := range result.Records {
		id, _ := record.Get("id")
		earnedAt, _ := record.Get("earned_at")

		def, ok := incentive.BadgeByID(asString(id))
		if !ok {
			continue
		}
		badges = append(badges, model.UserBadge{
			BadgeID:  def.BadgeID,
			Badge:    def,
			EarnedAt: asTime(earnedAt),
		})
	}
	return badges, nil
}

// EligibleBadges returns threshold badges the user qualifies for but has
// not earned yet.
func (s *Store) EligibleBadges(ctx context.Context, userID string) ([]model.BadgeDefinition, error) {
	user, err := s.UserPoints(ctx, userID)
	if err != nil {
		return nil, err
	}
	earned, err := s.UserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	earnedIDs := make(map[string]bool, len(earned))
	for _, b := range earned {
		earnedIDs[b.BadgeID] = true
	}
	return incentive.EligibleBadges(user.TotalPoints, earnedIDs), nil
}

// Leaderboard ranks users by total points.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	result, err := s.driver.ExecuteQuery(ctx, driver.LeaderboardQuery, map[string]interface{}{"limit": int64(limit)})
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(result.Records))
	for i, record := range result.Records {
		id, _ := record.Get("id")
		totalPoints, _ := record.Get("total_points")
		carbonSaved, _ := record.Get("total_carbon_saved_kg")
		rawBadges, _ := record.Get("badge_ids")

		badgeIDs := []string{}
		if list, ok := rawBadges.([]interface{}); ok {
			for _, b := range list {
				if s := asString(b); s != "" {
					badgeIDs = append(badgeIDs, s)
				}
			}
		}

		entries = append(entries, model.LeaderboardEntry{
			UserID:        asString(id),
			TotalPoints:   asInt(totalPoints),
			Rank:          i + 1,
			BadgesCount:   len(badgeIDs),
			CarbonSavedKg: asFloat(carbonSaved),
			BadgeIDs:      badgeIDs,
		})
	}
	return entries, nil
}
