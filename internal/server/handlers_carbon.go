package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/astra-cloud/astra/internal/core/carbon"
	"github.com/astra-cloud/astra/internal/core/incentive"
	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/store"
)

type CarbonReportRequest struct {
	Architecture model.Architecture `json:"architecture_json" binding:"required"`
	Region       string             `json:"region"`
	UserID       string             `json:"user_id"`
}

type CarbonReportResponse struct {
	Report model.CarbonReport `json:"report"`
	Hash   string             `json:"hash"`
}

// CreateCarbonReport estimates, hashes, and persists a carbon report for
// the posted architecture.
func (s *Server) CreateCarbonReport(c *gin.Context) {
	var req CarbonReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	region := req.Region
	if region == "" {
		region = s.cfg.Carbon.DefaultRegion
	}

	report := s.carbon.Report(req.Architecture, region, req.UserID)

	hash, err := carbon.Hash(report)
	if err != nil {
		log.Printf("Failed to hash report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	if err := s.store.SaveReport(c.Request.Context(), report, hash); err != nil {
		log.Printf("Failed to save report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	log.Printf("Carbon report generated: %s | %.2f kgCO2 | %.2f kWh",
		report.ReportID, report.Metrics.CarbonKg, report.Metrics.EnergyKWh)
	c.JSON(http.StatusOK, CarbonReportResponse{Report: report, Hash: hash})
}

func (s *Server) GetCarbonReport(c *gin.Context) {
	report, hash, err := s.store.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		log.Printf("Failed to get report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get report"})
		return
	}

	c.JSON(http.StatusOK, CarbonReportResponse{Report: report, Hash: hash})
}

func (s *Server) ListCarbonReports(c *gin.Context) {
	limit := intQuery(c, "limit", 20)
	skip := intQuery(c, "skip", 0)

	reports, err := s.store.ListReports(c.Request.Context(), limit, skip)
	if err != nil {
		log.Printf("Failed to list reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

// VerifyCarbonReport recomputes the hash of the stored report and tells
// the caller whether it still matches.
func (s *Server) VerifyCarbonReport(c *gin.Context) {
	hash := c.Param("hash")

	report, storedHash, err := s.store.GetReportByHash(c.Request.Context(), hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"verified": false, "reason": "No report with this hash"})
			return
		}
		log.Printf("Failed to verify report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		return
	}

	recomputed, err := carbon.Hash(report)
	if err != nil {
		log.Printf("Failed to rehash report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"verified":  recomputed == storedHash,
		"report_id": report.ReportID,
	})
}

func (s *Server) CarbonRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": carbon.Regions()})
}

type ScoreRequest struct {
	CurrentCarbonKg  float64 `json:"current_carbon_kg" binding:"min=0"`
	PreviousCarbonKg float64 `json:"previous_carbon_kg" binding:"min=0"`
	Region           string  `json:"region" binding:"required"`
	PreviousRegion   string  `json:"previous_region"`
	UserID           string  `json:"user_id"`
}

// SustainabilityScore grades the posted footprint change and, when a
// user id is supplied, awards the resulting points and any threshold
// badges the new total unlocks.
func (s *Server) SustainabilityScore(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	score := incentive.Score(req.CurrentCarbonKg, req.PreviousCarbonKg, req.Region, req.PreviousRegion)

	if req.UserID != "" && score.GreenPoints > 0 {
		category := "general"
		if score.CarbonSavedKg > 0 {
			category = "carbon_reduction"
		}
		reason := "Sustainability score: " + strconv.FormatFloat(score.Score, 'f', -1, 64) + "/100"

		ctx := c.Request.Context()
		if _, err := s.store.AwardPoints(ctx, req.UserID, score.GreenPoints, reason, category, score.CarbonSavedKg); err != nil {
			log.Printf("Failed to award points: %v", err)
		} else if eligible, err := s.store.EligibleBadges(ctx, req.UserID); err == nil {
			for _, badge := range eligible {
				if _, err := s.store.GrantBadge(ctx, req.UserID, badge.BadgeID); err != nil {
					log.Printf("Failed to grant badge %s: %v", badge.BadgeID, err)
				}
			}
		}
	}

	c.JSON(http.StatusOK, score)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
