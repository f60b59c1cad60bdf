package chat

import (
	"log"
	"regexp"
	"strings"

	"github.com/astra-cloud/astra/internal/core/common"
)

var jsonBlockRe = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// ScopeUpdate carries scope parameters the model extracted from the
// conversation. Fields are pointers so absent values stay absent.
type ScopeUpdate struct {
	Users        *int     `json:"users,omitempty"`
	TrafficLevel *int     `json:"trafficLevel,omitempty"`
	DataVolumeGB *float64 `json:"dataVolumeGB,omitempty"`
	Regions      *int     `json:"regions,omitempty"`
	Availability *float64 `json:"availability,omitempty"`
}

func (u *ScopeUpdate) empty() bool {
	return u.Users == nil && u.TrafficLevel == nil && u.DataVolumeGB == nil &&
		u.Regions == nil && u.Availability == nil
}

type scopeAnalysisPayload struct {
	ScopeAnalysis *ScopeUpdate `json:"scope_analysis"`
}

// extractScopeUpdate pulls a scope_analysis JSON block out of a reply.
// When found, the block is removed from the returned text. Malformed
// blocks are logged and left in place.
func extractScopeUpdate(text string) (string, *ScopeUpdate) {
	match := jsonBlockRe.FindStringSubmatch(text)
	if match == nil {
		return text, nil
	}

	payload, err := common.ParseJSON[scopeAnalysisPayload](match[1])
	if err != nil {
		log.Printf("Failed to parse JSON block from reply: %v", err)
		return text, nil
	}
	if payload.ScopeAnalysis == nil || payload.ScopeAnalysis.empty() {
		return text, nil
	}

	cleaned := strings.TrimSpace(strings.Replace(text, match[0], "", 1))
	return cleaned, payload.ScopeAnalysis
}
