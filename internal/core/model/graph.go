package model

// Category classifies a component's role in an architecture. It controls
// layout layering, connection validity and the cost/carbon defaults.
type Category string

const (
	CategoryFrontend       Category = "frontend"
	CategoryBackend        Category = "backend"
	CategoryDatabase       Category = "database"
	CategoryStorage        Category = "storage"
	CategoryHosting        Category = "hosting"
	CategoryInfrastructure Category = "infrastructure"
	CategoryAuthentication Category = "authentication"
	CategoryAIML           Category = "ai_ml"
	CategoryMessaging      Category = "messaging"
	CategoryMonitoring     Category = "monitoring"
	CategoryAnalytics      Category = "analytics"
	CategoryCICD           Category = "cicd"
	CategoryEmail          Category = "email"
	CategoryPayment        Category = "payment"
	CategorySearch         Category = "search"
)

// HandleSide names an edge attachment side on a rendered node. Purely a
// layout hint for the canvas, never load-bearing for cost or carbon logic.
type HandleSide string

const (
	HandleTop    HandleSide = "top"
	HandleRight  HandleSide = "right"
	HandleBottom HandleSide = "bottom"
	HandleLeft   HandleSide = "left"
)

type NodePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData is the payload a canvas node carries about its component.
type NodeData struct {
	Label       string                 `json:"label"`
	ComponentID string                 `json:"componentId"`
	Category    Category               `json:"category"`
	Icon        string                 `json:"icon,omitempty"`
	Color       string                 `json:"color,omitempty"`
	Config      map[string]interface{} `json:"config,omitempty"`
}

// Node is one component placed on the canvas. Nodes are created fresh per
// generated graph and never survive across calls.
type Node struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Position NodePosition `json:"position"`
	Data     NodeData     `json:"data"`
}

// Edge links two nodes. An edge exists only when the connection rules
// license its (source category, target category) pair.
type Edge struct {
	ID           string     `json:"id"`
	Source       string     `json:"source"`
	Target       string     `json:"target"`
	SourceHandle HandleSide `json:"sourceHandle,omitempty"`
	TargetHandle HandleSide `json:"targetHandle,omitempty"`
	Type         string     `json:"type"`
}

// Architecture is the complete generated diagram: positioned nodes, the
// edges between them, the scope they were generated for and the attached
// cost estimate.
type Architecture struct {
	Nodes        []Node        `json:"nodes"`
	Edges        []Edge        `json:"edges"`
	Scope        Scope         `json:"scope"`
	CostEstimate *CostEstimate `json:"costEstimate,omitempty"`
	Timestamp    *int64        `json:"timestamp,omitempty"`
}
