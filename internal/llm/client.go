// Package llm provides provider-agnostic clients for text generation and
// embeddings. The chat service and the knowledge retriever only ever see
// these two interfaces.
package llm

import "context"

type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
