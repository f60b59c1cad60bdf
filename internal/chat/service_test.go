package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astra-cloud/astra/internal/core/catalog"
	"github.com/astra-cloud/astra/internal/core/diagram"
	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/core/pricing"
)

type mockLLM struct {
	reply string
	err   error
	// last prompt seen, for assertions on prompt assembly
	prompt string
}

func (m *mockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func newTestService(client *mockLLM) *Service {
	cat := catalog.New()
	synth := diagram.New(cat, pricing.NewCalculator(cat))
	if client == nil {
		return NewService(nil, nil, cat, synth)
	}
	return NewService(client, nil, cat, synth)
}

func testScope() model.Scope {
	return model.Scope{Users: 1000, TrafficLevel: 2, DataVolumeGB: 10, Regions: 1, Availability: 99.9}
}

func TestDetectCanvasIntent(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"show me a diagram", true},
		{"can you visualize this?", true},
		{"build me a scalable architecture", true},
		{"design the system", true},
		{"what does PostgreSQL cost?", false},
		{"tell me about the infrastructure", false},
	}
	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectCanvasIntent(tc.message))
		})
	}
}

func TestExtractComponentIDs(t *testing.T) {
	cat := catalog.New()

	t.Run("name match", func(t *testing.T) {
		ids := ExtractComponentIDs(cat, "Use PostgreSQL with Redis in front")
		assert.Contains(t, ids, "postgresql")
		assert.Contains(t, ids, "redis")
	})

	t.Run("normalized id match", func(t *testing.T) {
		ids := ExtractComponentIDs(cat, "A next.js frontend would work here")
		assert.Contains(t, ids, "nextjs")
	})

	t.Run("dedup preserves order", func(t *testing.T) {
		ids := ExtractComponentIDs(cat, "Redis, then PostgreSQL, then Redis again")
		count := 0
		for _, id := range ids {
			if id == "redis" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, ExtractComponentIDs(cat, "nothing relevant here"))
	})
}

func TestExtractScopeUpdate(t *testing.T) {
	t.Run("block removed and parsed", func(t *testing.T) {
		text := "Here is my analysis.\n\n```json\n{\"scope_analysis\": {\"users\": 50000, \"availability\": 99.95}}\n```\n\nLet me know."
		cleaned, update := extractScopeUpdate(text)
		require.NotNil(t, update)
		require.NotNil(t, update.Users)
		assert.Equal(t, 50000, *update.Users)
		require.NotNil(t, update.Availability)
		assert.Equal(t, 99.95, *update.Availability)
		assert.Nil(t, update.Regions)
		assert.NotContains(t, cleaned, "```json")
	})

	t.Run("no block", func(t *testing.T) {
		cleaned, update := extractScopeUpdate("plain reply")
		assert.Nil(t, update)
		assert.Equal(t, "plain reply", cleaned)
	})

	t.Run("malformed block left alone", func(t *testing.T) {
		text := "```json\n{not valid}\n```"
		cleaned, update := extractScopeUpdate(text)
		assert.Nil(t, update)
		assert.Equal(t, text, cleaned)
	})

	t.Run("unrelated json ignored", func(t *testing.T) {
		text := "```json\n{\"other\": 1}\n```"
		_, update := extractScopeUpdate(text)
		assert.Nil(t, update)
	})
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	id := store.GetOrCreate("")
	require.NotEmpty(t, id)
	assert.Equal(t, id, store.GetOrCreate(id))
	assert.NotEqual(t, id, store.GetOrCreate("unknown-id"))

	store.Append(id, Message{Role: "user", Content: "hi"})
	history, ok := store.History(id)
	require.True(t, ok)
	require.Len(t, history, 1)
	assert.Equal(t, "hi", history[0].Content)

	assert.True(t, store.Delete(id))
	assert.False(t, store.Delete(id))
	_, ok = store.History(id)
	assert.False(t, ok)
}

func TestServiceRespond(t *testing.T) {
	ctx := context.Background()

	t.Run("architecture generated on canvas intent", func(t *testing.T) {
		client := &mockLLM{reply: "I recommend Next.js with PostgreSQL."}
		svc := newTestService(client)

		resp := svc.Respond(ctx, Request{Message: "design a system with a database", Scope: testScope()})

		assert.Equal(t, "update", resp.CanvasAction)
		require.NotNil(t, resp.UpdatedArchitecture)
		assert.Len(t, resp.UpdatedArchitecture.Nodes, 2)
		assert.True(t, resp.SuggestImplementation)
		assert.Contains(t, client.prompt, "design a system with a database")
		assert.Contains(t, client.prompt, "Current Project Scope")
	})

	t.Run("no canvas action without intent", func(t *testing.T) {
		svc := newTestService(&mockLLM{reply: "PostgreSQL is a relational database."})

		resp := svc.Respond(ctx, Request{Message: "what is postgres?", Scope: testScope()})

		assert.Equal(t, "none", resp.CanvasAction)
		assert.Nil(t, resp.UpdatedArchitecture)
		assert.False(t, resp.SuggestImplementation)
	})

	t.Run("history accumulates across turns", func(t *testing.T) {
		client := &mockLLM{reply: "ok"}
		svc := newTestService(client)

		first := svc.Respond(ctx, Request{Message: "hello", Scope: testScope()})
		svc.Respond(ctx, Request{Message: "tell me more", SessionID: first.SessionID, Scope: testScope()})

		history, ok := svc.Sessions().History(first.SessionID)
		require.True(t, ok)
		assert.Len(t, history, 4)
		assert.Contains(t, client.prompt, "USER: hello")
		assert.Contains(t, client.prompt, "ASSISTANT: ok")
	})

	t.Run("generation error yields apology", func(t *testing.T) {
		svc := newTestService(&mockLLM{err: errors.New("rate limited")})

		resp := svc.Respond(ctx, Request{Message: "hello", Scope: testScope()})
		assert.Contains(t, resp.Message, "encountered an error")
	})

	t.Run("demo mode without client", func(t *testing.T) {
		svc := newTestService(nil)

		resp := svc.Respond(ctx, Request{Message: "hello", Scope: testScope()})
		assert.Contains(t, resp.Message, "demo mode")
		assert.NotEmpty(t, resp.SessionID)
	})

	t.Run("scope update extracted from reply", func(t *testing.T) {
		reply := "Got it.\n```json\n{\"scope_analysis\": {\"users\": 200}}\n```"
		svc := newTestService(&mockLLM{reply: reply})

		resp := svc.Respond(ctx, Request{Message: "we have 200 users", Scope: testScope()})
		require.NotNil(t, resp.UpdatedScope)
		require.NotNil(t, resp.UpdatedScope.Users)
		assert.Equal(t, 200, *resp.UpdatedScope.Users)
		assert.Equal(t, "Got it.", resp.Message)
	})
}
