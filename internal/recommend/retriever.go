// Package recommend retrieves architecture guidance for chat prompts. With
// an embedder configured it ranks the built-in knowledge base by cosine
// similarity; without one it degrades to keyword overlap.
package recommend

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/astra-cloud/astra/internal/llm"
)

type document struct {
	text   string
	vector []float32
}

type Retriever struct {
	embedder llm.Embedder
	docs     []document
}

// NewRetriever indexes the knowledge base. Embedding failures are logged
// and leave the affected document on the keyword path; the retriever itself
// never fails to construct.
func NewRetriever(ctx context.Context, embedder llm.Embedder) *Retriever {
	r := &Retriever{embedder: embedder}

	for _, text := range knowledgeBase {
		doc := document{text: text}
		if embedder != nil {
			vec, err := embedder.Embed(ctx, text)
			if err != nil {
				log.Printf("Failed to embed knowledge document: %v", err)
			} else {
				doc.vector = vec
			}
		}
		r.docs = append(r.docs, doc)
	}

	return r
}

// Retrieve returns the top-k most relevant documents concatenated with
// blank lines, or "" when nothing scores above zero.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) string {
	if k <= 0 || len(r.docs) == 0 {
		return ""
	}

	scores := r.scoreByEmbedding(ctx, query)
	if scores == nil {
		scores = r.scoreByKeywords(query)
	}

	type ranked struct {
		idx   int
		score float64
	}
	order := make([]ranked, len(scores))
	for i, s := range scores {
		order[i] = ranked{i, s}
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].score > order[j].score })

	var parts []string
	for _, entry := range order {
		if len(parts) == k {
			break
		}
		if entry.score <= 0 {
			break
		}
		parts = append(parts, r.docs[entry.idx].text)
	}
	return strings.Join(parts, "\n\n")
}

func (r *Retriever) scoreByEmbedding(ctx context.Context, query string) []float64 {
	if r.embedder == nil {
		return nil
	}
	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil || len(queryVec) == 0 {
		log.Printf("Query embedding failed, falling back to keywords: %v", err)
		return nil
	}

	scores := make([]float64, len(r.docs))
	usable := false
	for i, doc := range r.docs {
		if len(doc.vector) == 0 {
			continue
		}
		scores[i] = cosine(queryVec, doc.vector)
		usable = true
	}
	if !usable {
		return nil
	}
	return scores
}

func (r *Retriever) scoreByKeywords(query string) []float64 {
	terms := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if len(w) > 3 {
			terms[strings.Trim(w, ".,!?:;()")] = true
		}
	}

	scores := make([]float64, len(r.docs))
	for i, doc := range r.docs {
		text := strings.ToLower(doc.text)
		for term := range terms {
			if strings.Contains(text, term) {
				scores[i]++
			}
		}
	}
	return scores
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
