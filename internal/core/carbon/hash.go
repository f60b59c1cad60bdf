package carbon

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/astra-cloud/astra/internal/core/model"
)

// Hash fingerprints a report's content as a hex SHA-256 of its canonical
// JSON. Report id and timestamps are excluded so the same content always
// hashes the same; Go marshals map keys in sorted order, which keeps the
// encoding canonical.
func Hash(report model.CarbonReport) (string, error) {
	hashable := map[string]interface{}{
		"metrics":             report.Metrics,
		"component_breakdown": report.ComponentBreakdown,
		"nodes_count":         len(report.Architecture.Nodes),
		"edges_count":         len(report.Architecture.Edges),
		"scope":               report.Architecture.Scope,
	}

	canonical, err := json.Marshal(hashable)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
