// Package diagram turns an unordered list of component ids into a positioned
// architecture graph: nodes laid out by category layer, edges derived from
// the connection rules, and a cost estimate attached.
package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/astra-cloud/astra/internal/core/catalog"
	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/core/pricing"
	"github.com/astra-cloud/astra/internal/core/rules"
)

// Layout constants. Layers flow left to right; nodes stack downward within
// a layer.
const (
	startX            = 100.0
	startY            = 100.0
	horizontalSpacing = 300.0
	verticalSpacing   = 150.0
)

// categoryLayers controls horizontal placement. Categories missing from the
// map land in the data/services layer.
var categoryLayers = map[model.Category]int{
	model.CategoryFrontend:       0,
	model.CategoryInfrastructure: 1,
	model.CategoryBackend:        2,
	model.CategoryAuthentication: 2,
	model.CategoryDatabase:       3,
	model.CategoryStorage:        3,
	model.CategoryMessaging:      3,
	model.CategorySearch:         3,
	model.CategoryAIML:           3,
	model.CategoryEmail:          3,
	model.CategoryPayment:        3,
	model.CategoryHosting:        4,
	model.CategoryMonitoring:     5,
	model.CategoryAnalytics:      5,
	model.CategoryCICD:           6,
}

const defaultLayer = 3

// Synthesizer builds architecture graphs. The id suffix source is injected
// so tests can generate deterministic graphs; uniqueness only matters
// within one generated graph.
type Synthesizer struct {
	catalog *catalog.Catalog
	pricing *pricing.Calculator
	suffix  func() string
}

func New(cat *catalog.Catalog, calc *pricing.Calculator) *Synthesizer {
	return NewWithSuffix(cat, calc, randomSuffix)
}

// NewWithSuffix injects the node/edge id suffix source.
func NewWithSuffix(cat *catalog.Catalog, calc *pricing.Calculator, suffix func() string) *Synthesizer {
	return &Synthesizer{catalog: cat, pricing: calc, suffix: suffix}
}

func randomSuffix() string {
	return uuid.New().String()[:8]
}

// Generate builds the full graph for a component list and scope. It is
// best-effort by contract: unknown ids are dropped silently and the result
// is only empty when no id resolves.
func (s *Synthesizer) Generate(componentIDs []string, scope model.Scope) model.Architecture {
	// Partition into layers, preserving input order within each layer.
	layers := make(map[int][]string)
	for _, id := range componentIDs {
		comp, ok := s.catalog.Lookup(id)
		if !ok {
			continue
		}
		layer := layerFor(comp.Category)
		layers[layer] = append(layers[layer], id)
	}

	layerNums := make([]int, 0, len(layers))
	for layer := range layers {
		layerNums = append(layerNums, layer)
	}
	sort.Ints(layerNums)

	nodes := []model.Node{}
	for _, layer := range layerNums {
		for idx, id := range layers[layer] {
			comp, _ := s.catalog.Lookup(id)
			nodes = append(nodes, s.newNode(comp, model.NodePosition{
				X: startX + float64(layer)*horizontalSpacing,
				Y: startY + float64(idx)*verticalSpacing,
			}))
		}
	}

	edges := s.generateEdges(nodes)

	estimate := s.pricing.ArchitectureCost(componentIDs, scope)
	return model.Architecture{
		Nodes:        nodes,
		Edges:        edges,
		Scope:        scope,
		CostEstimate: &estimate,
	}
}

func (s *Synthesizer) newNode(comp catalog.Component, pos model.NodePosition) model.Node {
	iconName := strings.NewReplacer("_", "", "-", "").Replace(comp.ID)
	return model.Node{
		ID:       fmt.Sprintf("%s-%s", comp.ID, s.suffix()),
		Type:     "custom",
		Position: pos,
		Data: model.NodeData{
			Label:       comp.Name,
			ComponentID: comp.ID,
			Category:    comp.Category,
			Icon:        fmt.Sprintf("https://cdn.simpleicons.org/%s/000000", iconName),
			Color:       "#3b82f6",
			Config:      map[string]interface{}{},
		},
	}
}

// generateEdges wires nodes according to the connection rules. For each
// (source node, valid target category) pair exactly one edge is drawn, to
// the first node of that category in creation order. First match wins;
// additional nodes of an already-connected category get no extra edge.
func (s *Synthesizer) generateEdges(nodes []model.Node) []model.Edge {
	nodesByCategory := make(map[model.Category][]model.Node)
	for _, node := range nodes {
		cat := node.Data.Category
		nodesByCategory[cat] = append(nodesByCategory[cat], node)
	}

	edges := []model.Edge{}
	for _, source := range nodes {
		for _, targetCat := range sortedTargets(source.Data.Category) {
			candidates := nodesByCategory[targetCat]
			if len(candidates) == 0 {
				continue
			}
			target := candidates[0]

			sourceHandle, targetHandle := model.HandleBottom, model.HandleTop
			if source.Position.X < target.Position.X {
				sourceHandle, targetHandle = model.HandleRight, model.HandleLeft
			}

			edges = append(edges, model.Edge{
				ID:           "e" + s.suffix(),
				Source:       source.ID,
				Target:       target.ID,
				SourceHandle: sourceHandle,
				TargetHandle: targetHandle,
				Type:         "custom",
			})
		}
	}
	return edges
}

// sortedTargets fixes an iteration order over the rule set so generated
// edge lists are stable for identical inputs.
func sortedTargets(src model.Category) []model.Category {
	targets := rules.ValidTargets(src)
	out := make([]model.Category, 0, len(targets))
	for cat := range targets {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func layerFor(cat model.Category) int {
	if layer, ok := categoryLayers[cat]; ok {
		return layer
	}
	return defaultLayer
}
