package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/driver"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = fmt.Errorf("not found")

const sandboxIDRetries = 5

// SandboxFilter narrows ListSandboxes. Zero values mean "no filter";
// MinCost/MaxCost are pointers so a zero bound is still expressible.
type SandboxFilter struct {
	Search    string
	TechStack []string
	MinCost   *float64
	MaxCost   *float64
	Limit     int
	Skip      int
}

// PublishSandbox stores an architecture in the public gallery. The tech
// stack is derived from node labels, the total cost from the embedded
// estimate.
func (s *Store) PublishSandbox(ctx context.Context, projectName, description string, arch model.Architecture) (model.Sandbox, error) {
	id, err := s.freshSandboxID(ctx)
	if err != nil {
		return model.Sandbox{}, err
	}

	totalCost := 0.0
	if arch.CostEstimate != nil {
		totalCost = arch.CostEstimate.Total
	}

	now := time.Now().UTC()
	sandbox := model.Sandbox{
		SandboxID:    id,
		ProjectName:  projectName,
		Description:  description,
		Architecture: arch,
		TechStack:    techStack(arch.Nodes),
		TotalCost:    totalCost,
		CreatedAt:    now,
		UpdatedAt:    now,
		IsPublic:     true,
		Views:        0,
	}

	payload, err := json.Marshal(sandbox)
	if err != nil {
		return model.Sandbox{}, fmt.Errorf("failed to encode sandbox: %w", err)
	}

	_, err = s.driver.ExecuteQuery(ctx, driver.SaveSandboxQuery, map[string]interface{}{
		"id":           sandbox.SandboxID,
		"project_name": sandbox.ProjectName,
		"tech_stack":   sandbox.TechStack,
		"total_cost":   sandbox.TotalCost,
		"is_public":    sandbox.IsPublic,
		"created_at":   now.Format(time.RFC3339),
		"payload":      string(payload),
	})
	if err != nil {
		return model.Sandbox{}, fmt.Errorf("failed to save sandbox: %w", err)
	}

	log.Printf("Created sandbox: %s", sandbox.SandboxID)
	return sandbox, nil
}

// GetSandbox loads a sandbox by id and increments its view counter.
func (s *Store) GetSandbox(ctx context.Context, id string) (model.Sandbox, error) {
	result, err := s.driver.ExecuteQuery(ctx, driver.GetSandboxQuery, map[string]interface{}{"id": id})
	if err != nil {
		return model.Sandbox{}, err
	}
	if len(result.Records) == 0 {
		return model.Sandbox{}, ErrNotFound
	}

	payload, _ := result.Records[0].Get("payload")
	views, _ := result.Records[0].Get("views")

	var sandbox model.Sandbox
	if err := json.Unmarshal([]byte(asString(payload)), &sandbox); err != nil {
		return model.Sandbox{}, fmt.Errorf("failed to decode sandbox %s: %w", id, err)
	}
	sandbox.Views = asInt64(views)
	return sandbox, nil
}

// ListSandboxes returns public sandboxes newest first.
func (s *Store) ListSandboxes(ctx context.Context, filter SandboxFilter) ([]model.Sandbox, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	minCost := 0.0
	if filter.MinCost != nil {
		minCost = *filter.MinCost
	}
	maxCost := 1e12
	if filter.MaxCost != nil {
		maxCost = *filter.MaxCost
	}
	techStack := filter.TechStack
	if techStack == nil {
		techStack = []string{}
	}

	result, err := s.driver.ExecuteQuery(ctx, driver.ListSandboxesQuery, map[string]interface{}{
		"search":     filter.Search,
		"tech_stack": techStack,
		"min_cost":   minCost,
		"max_cost":   maxCost,
		"skip":       int64(filter.Skip),
		"limit":      int64(limit),
	})
	if err != nil {
		return nil, err
	}

	sandboxes := make([]model.Sandbox, 0, len(result.Records))
	for _, record := range result.Records {
		payload, _ := record.Get("payload")
		views, _ := record.Get("views")

		var sandbox model.Sandbox
		if err := json.Unmarshal([]byte(asString(payload)), &sandbox); err != nil {
			log.Printf("Skipping undecodable sandbox: %v", err)
			continue
		}
		sandbox.Views = asInt64(views)
		sandboxes = append(sandboxes, sandbox)
	}
	return sandboxes, nil
}

func (s *Store) freshSandboxID(ctx context.Context) (string, error) {
	for i := 0; i < sandboxIDRetries; i++ {
		id := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]

		result, err := s.driver.ExecuteQuery(ctx, driver.SandboxExistsQuery, map[string]interface{}{"id": id})
		if err != nil {
			return "", err
		}
		if len(result.Records) == 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique sandbox id")
}

func techStack(nodes []model.Node) []string {
	seen := make(map[string]bool)
	var stack []string
	for _, node := range nodes {
		label := node.Data.Label
		if label != "" && !seen[label] {
			seen[label] = true
			stack = append(stack, label)
		}
	}
	sort.Strings(stack)
	return stack
}
