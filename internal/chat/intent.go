package chat

import "strings"

var (
	directTriggers = []string{"canvas", "diagram", "visualize", "visualization", "draw", "sure", "show"}

	architectureTerms = []string{"architecture", "system", "stack", "setup", "infrastructure"}

	actionWords = []string{"create", "design", "build", "make", "show", "implement", "set up", "add", "sure"}

	implementKeywords = []string{"implement", "create", "build", "design", "set up", "add"}
)

// DetectCanvasIntent reports whether the message asks to see an
// architecture rendered. Direct triggers fire on their own; otherwise an
// architecture term must be paired with an action word.
func DetectCanvasIntent(message string) bool {
	lower := strings.ToLower(message)

	for _, trigger := range directTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}

	return containsAny(lower, architectureTerms) && containsAny(lower, actionWords)
}

// SuggestImplementation flags messages that ask for something to be built.
func SuggestImplementation(message string) bool {
	return containsAny(strings.ToLower(message), implementKeywords)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
