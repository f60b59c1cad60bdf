// Package rules defines which category-to-category links are architecturally
// meaningful. The relation is a fixed table of ordered pairs; self-pairs are
// allowed (backend to backend covers microservice meshes).
package rules

import "github.com/astra-cloud/astra/internal/core/model"

type pair struct {
	src, tgt model.Category
}

var validConnections = map[pair]bool{
	// Frontend reaches backends, auth, hosting and CDN-style infrastructure.
	{model.CategoryFrontend, model.CategoryBackend}:        true,
	{model.CategoryFrontend, model.CategoryAuthentication}: true,
	{model.CategoryFrontend, model.CategoryHosting}:        true,
	{model.CategoryFrontend, model.CategoryInfrastructure}: true,

	// Backend reaches data stores and supporting services.
	{model.CategoryBackend, model.CategoryDatabase}:       true,
	{model.CategoryBackend, model.CategoryStorage}:        true,
	{model.CategoryBackend, model.CategoryAuthentication}: true,
	{model.CategoryBackend, model.CategoryAIML}:           true,
	{model.CategoryBackend, model.CategoryMessaging}:      true,
	{model.CategoryBackend, model.CategoryEmail}:          true,
	{model.CategoryBackend, model.CategoryPayment}:        true,
	{model.CategoryBackend, model.CategorySearch}:         true,
	{model.CategoryBackend, model.CategoryHosting}:        true,
	{model.CategoryBackend, model.CategoryBackend}:        true,

	// Infrastructure fronts frontends, backends, databases.
	{model.CategoryInfrastructure, model.CategoryFrontend}: true,
	{model.CategoryInfrastructure, model.CategoryBackend}:  true,
	{model.CategoryInfrastructure, model.CategoryDatabase}: true,

	// Hosting runs compute.
	{model.CategoryHosting, model.CategoryBackend}:  true,
	{model.CategoryHosting, model.CategoryFrontend}: true,

	// Database backups land in object storage.
	{model.CategoryDatabase, model.CategoryStorage}: true,

	// Monitoring watches everything that runs.
	{model.CategoryMonitoring, model.CategoryFrontend}:       true,
	{model.CategoryMonitoring, model.CategoryBackend}:        true,
	{model.CategoryMonitoring, model.CategoryDatabase}:       true,
	{model.CategoryMonitoring, model.CategoryInfrastructure}: true,
	{model.CategoryMonitoring, model.CategoryHosting}:        true,

	// Analytics tracks user-facing and API tiers.
	{model.CategoryAnalytics, model.CategoryFrontend}: true,
	{model.CategoryAnalytics, model.CategoryBackend}:  true,

	// CI/CD deploys to hosting and infrastructure.
	{model.CategoryCICD, model.CategoryHosting}:        true,
	{model.CategoryCICD, model.CategoryInfrastructure}: true,

	// Messaging flows both ways with backend.
	{model.CategoryMessaging, model.CategoryBackend}: true,
}

// IsValid reports whether a source-category to target-category connection
// is licensed.
func IsValid(src, tgt model.Category) bool {
	return validConnections[pair{src, tgt}]
}

// ValidTargets returns the set of categories a source category may connect to.
func ValidTargets(src model.Category) map[model.Category]bool {
	out := make(map[model.Category]bool)
	for p := range validConnections {
		if p.src == src {
			out[p.tgt] = true
		}
	}
	return out
}

// ValidSources returns the set of categories that may connect to a target
// category.
func ValidSources(tgt model.Category) map[model.Category]bool {
	out := make(map[model.Category]bool)
	for p := range validConnections {
		if p.tgt == tgt {
			out[p.src] = true
		}
	}
	return out
}
