package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/store"
)

type PublishSandboxRequest struct {
	ProjectName  string             `json:"projectName" binding:"required"`
	Description  string             `json:"description"`
	Architecture model.Architecture `json:"architectureJson" binding:"required"`
}

func (s *Server) PublishSandbox(c *gin.Context) {
	var req PublishSandboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sandbox, err := s.store.PublishSandbox(c.Request.Context(), req.ProjectName, req.Description, req.Architecture)
	if err != nil {
		log.Printf("Failed to publish sandbox: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sandbox"})
		return
	}

	c.JSON(http.StatusCreated, sandbox)
}

func (s *Server) GetSandbox(c *gin.Context) {
	sandbox, err := s.store.GetSandbox(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sandbox not found"})
			return
		}
		log.Printf("Failed to get sandbox: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get sandbox"})
		return
	}

	c.JSON(http.StatusOK, sandbox)
}

// ListSandboxes filters the public gallery. Query parameters: search,
// tech_stack (comma-separated), min_cost, max_cost, limit, skip.
func (s *Server) ListSandboxes(c *gin.Context) {
	filter := store.SandboxFilter{
		Search: c.Query("search"),
		Limit:  intQuery(c, "limit", 20),
		Skip:   intQuery(c, "skip", 0),
	}

	if raw := c.Query("tech_stack"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.TechStack = append(filter.TechStack, t)
			}
		}
	}
	if raw := c.Query("min_cost"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinCost = &v
		}
	}
	if raw := c.Query("max_cost"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxCost = &v
		}
	}

	sandboxes, err := s.store.ListSandboxes(c.Request.Context(), filter)
	if err != nil {
		log.Printf("Failed to list sandboxes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sandboxes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sandboxes": sandboxes, "count": len(sandboxes)})
}
