package chat

import (
	"strings"

	"github.com/astra-cloud/astra/internal/core/catalog"
)

// ExtractComponentIDs finds catalog components mentioned in free text.
// A component matches when its display name appears verbatim, or when its
// id stripped of separators appears in the text stripped of dots and
// spaces ("next.js" and "nextjs" both hit the nextjs component).
// Duplicates are removed, first mention wins.
func ExtractComponentIDs(cat *catalog.Catalog, text string) []string {
	lower := strings.ToLower(text)
	normalized := strings.ReplaceAll(strings.ReplaceAll(lower, ".", ""), " ", "")

	var mentioned []string
	for _, comp := range cat.All() {
		if strings.Contains(lower, strings.ToLower(comp.Name)) {
			mentioned = append(mentioned, comp.ID)
			continue
		}
		bareID := strings.ReplaceAll(strings.ReplaceAll(comp.ID, "-", ""), "_", "")
		if strings.Contains(normalized, bareID) {
			mentioned = append(mentioned, comp.ID)
		}
	}

	seen := make(map[string]bool, len(mentioned))
	result := mentioned[:0]
	for _, id := range mentioned {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
