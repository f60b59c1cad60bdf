package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/astra-cloud/astra/internal/core/incentive"
)

type AwardPointsRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Points   int    `json:"points" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
	Category string `json:"category"`
}

func (s *Server) AwardPoints(c *gin.Context) {
	var req AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Category == "" {
		req.Category = "general"
	}

	tx, err := s.store.AwardPoints(c.Request.Context(), req.UserID, req.Points, req.Reason, req.Category, 0)
	if err != nil {
		log.Printf("Failed to award points: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award points"})
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (s *Server) GetUserPoints(c *gin.Context) {
	user, err := s.store.UserPoints(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Failed to get points: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get points"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) GetPointsHistory(c *gin.Context) {
	limit := intQuery(c, "limit", 50)

	history, err := s.store.PointsHistory(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		log.Printf("Failed to get history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": history, "count": len(history)})
}

func (s *Server) GetUserBadges(c *gin.Context) {
	badges, err := s.store.UserBadges(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Failed to get badges: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get badges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges, "count": len(badges)})
}

func (s *Server) ListBadges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"badges": incentive.Badges()})
}

type ClaimRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	ClaimType   string `json:"claim_type" binding:"required"`
	BadgeID     string `json:"badge_id"`
	TokenAmount int    `json:"token_amount"`
}

// ClaimReward converts earned green points into a badge grant or a token
// deduction recorded on the points ledger.
func (s *Server) ClaimReward(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	ctx := c.Request.Context()

	switch req.ClaimType {
	case "badge":
		if req.BadgeID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "badge_id required for badge claims"})
			return
		}
		badge, err := s.store.GrantBadge(ctx, req.UserID, req.BadgeID)
		if err != nil {
			if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "already earned") {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			log.Printf("Failed to claim badge: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Claim failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"claim_type": "badge",
			"badge":      badge,
			"message":    "Badge '" + badge.Badge.Name + "' earned!",
		})

	case "tokens":
		if req.TokenAmount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "token_amount must be positive"})
			return
		}
		user, err := s.store.UserPoints(ctx, req.UserID)
		if err != nil {
			log.Printf("Failed to claim tokens: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Claim failed"})
			return
		}
		if user.TotalPoints < req.TokenAmount {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Insufficient points",
			})
			return
		}
		tx, err := s.store.AwardPoints(ctx, req.UserID, -req.TokenAmount, "Claimed green tokens", "token_claim", 0)
		if err != nil {
			log.Printf("Failed to claim tokens: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Claim failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"claim_type":  "tokens",
			"amount":      req.TokenAmount,
			"transaction": tx,
		})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "claim_type must be 'tokens' or 'badge'"})
	}
}

func (s *Server) Leaderboard(c *gin.Context) {
	limit := intQuery(c, "limit", 20)

	entries, err := s.store.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Failed to get leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
