// Package server exposes the HTTP API: catalog listing, architecture
// generation and pricing, carbon reporting, chat, the sandbox gallery,
// and the green incentives ledger.
package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/astra-cloud/astra/internal/chat"
	"github.com/astra-cloud/astra/internal/config"
	"github.com/astra-cloud/astra/internal/core/carbon"
	"github.com/astra-cloud/astra/internal/core/catalog"
	"github.com/astra-cloud/astra/internal/core/diagram"
	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/core/pricing"
	"github.com/astra-cloud/astra/internal/llm"
	"github.com/astra-cloud/astra/internal/recommend"
	"github.com/astra-cloud/astra/internal/store"
)

// Store is the persistence surface the handlers use, satisfied by
// store.Store and stubbed in tests.
type Store interface {
	PublishSandbox(ctx context.Context, projectName, description string, arch model.Architecture) (model.Sandbox, error)
	GetSandbox(ctx context.Context, id string) (model.Sandbox, error)
	ListSandboxes(ctx context.Context, filter store.SandboxFilter) ([]model.Sandbox, error)

	SaveReport(ctx context.Context, report model.CarbonReport, hash string) error
	GetReport(ctx context.Context, id string) (model.CarbonReport, string, error)
	GetReportByHash(ctx context.Context, hash string) (model.CarbonReport, string, error)
	ListReports(ctx context.Context, limit, skip int) ([]model.CarbonReport, error)

	AwardPoints(ctx context.Context, userID string, points int, reason, category string, carbonSavedKg float64) (model.GreenPointsTransaction, error)
	UserPoints(ctx context.Context, userID string) (model.GreenUser, error)
	PointsHistory(ctx context.Context, userID string, limit int) ([]model.GreenPointsTransaction, error)
	GrantBadge(ctx context.Context, userID, badgeID string) (model.UserBadge, error)
	UserBadges(ctx context.Context, userID string) ([]model.UserBadge, error)
	EligibleBadges(ctx context.Context, userID string) ([]model.BadgeDefinition, error)
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

type Server struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	pricing *pricing.Calculator
	carbon  *carbon.Estimator
	diagram *diagram.Synthesizer
	chat    *chat.Service
	store   Store
}

// New assembles the full service. The LLM client and embedder may be nil
// for demo mode; the store must be non-nil.
func New(cfg *config.Config, llmClient llm.Client, embedder llm.Embedder, st Store) *Server {
	cat := catalog.New()
	calc := pricing.NewCalculator(cat)
	synth := diagram.New(cat, calc)

	retriever := recommend.NewRetriever(context.Background(), embedder)

	return &Server{
		cfg:     cfg,
		catalog: cat,
		pricing: calc,
		carbon:  carbon.NewEstimator(calc),
		diagram: synth,
		chat:    chat.NewService(llmClient, retriever, cat, synth),
		store:   st,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(s.corsMiddleware())

	r.GET("/", s.Root)
	r.GET("/health", s.Health)

	api := r.Group("/api")
	{
		api.GET("/components", s.ListComponents)

		api.POST("/architecture/generate", s.GenerateArchitecture)
		api.POST("/architecture/cost", s.EstimateCost)

		api.POST("/carbon/report", s.CreateCarbonReport)
		api.GET("/carbon/report/:id", s.GetCarbonReport)
		api.GET("/carbon/reports", s.ListCarbonReports)
		api.GET("/carbon/regions", s.CarbonRegions)
		api.GET("/carbon/verify/:hash", s.VerifyCarbonReport)
		api.POST("/carbon/score", s.SustainabilityScore)

		api.POST("/chat", s.Chat)
		api.GET("/chat/sessions/:id", s.GetChatSession)
		api.DELETE("/chat/sessions/:id", s.DeleteChatSession)

		api.POST("/sandboxes", s.PublishSandbox)
		api.GET("/sandboxes", s.ListSandboxes)
		api.GET("/sandboxes/:id", s.GetSandbox)

		api.POST("/incentives/points", s.AwardPoints)
		api.GET("/incentives/users/:id", s.GetUserPoints)
		api.GET("/incentives/users/:id/history", s.GetPointsHistory)
		api.GET("/incentives/users/:id/badges", s.GetUserBadges)
		api.GET("/incentives/badges", s.ListBadges)
		api.POST("/incentives/claim", s.ClaimReward)
		api.GET("/incentives/leaderboard", s.Leaderboard)
	}

	return r
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	allowed := s.cfg.CORSOriginList()

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
				break
			}
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "astra",
		"status":  "running",
		"version": "1.0.0",
	})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
