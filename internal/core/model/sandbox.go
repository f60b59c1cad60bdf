package model

import "time"

// Sandbox is a published architecture in the public gallery.
type Sandbox struct {
	SandboxID    string       `json:"sandboxId"`
	ProjectName  string       `json:"projectName"`
	Description  string       `json:"description"`
	Architecture Architecture `json:"architectureJson"`
	TechStack    []string     `json:"techStack"`
	TotalCost    float64      `json:"totalCost"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	IsPublic     bool         `json:"isPublic"`
	Views        int64        `json:"views"`
}
