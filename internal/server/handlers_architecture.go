package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astra-cloud/astra/internal/core/model"
)

// ListComponents returns the full catalog, or one category when the
// query parameter is set.
func (s *Server) ListComponents(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		comps := s.catalog.ByCategory(model.Category(category))
		c.JSON(http.StatusOK, gin.H{"components": comps, "count": len(comps)})
		return
	}

	comps := s.catalog.All()
	c.JSON(http.StatusOK, gin.H{"components": comps, "count": len(comps)})
}

type GenerateRequest struct {
	Components []string    `json:"components" binding:"required,min=1"`
	Scope      model.Scope `json:"scope" binding:"required"`
}

func (s *Server) GenerateArchitecture(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	arch := s.diagram.Generate(req.Components, req.Scope)
	if len(arch.Nodes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No known components in request"})
		return
	}

	c.JSON(http.StatusOK, arch)
}

func (s *Server) EstimateCost(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.pricing.ArchitectureCost(req.Components, req.Scope))
}
