// Package chat orchestrates the conversational flow: retrieve knowledge
// context, generate a reply, detect canvas intent, and when the user asks
// for a design, synthesize an architecture from the components the
// conversation mentions.
package chat

import (
	"context"
	"log"

	"github.com/astra-cloud/astra/internal/core/catalog"
	"github.com/astra-cloud/astra/internal/core/diagram"
	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/llm"
	"github.com/astra-cloud/astra/internal/recommend"
)

const contextDocs = 3

type Request struct {
	Message   string      `json:"message" binding:"required"`
	SessionID string      `json:"session_id"`
	Scope     model.Scope `json:"scope"`
}

type Response struct {
	Message               string              `json:"message"`
	SessionID             string              `json:"session_id"`
	SuggestImplementation bool                `json:"suggest_implementation"`
	UpdatedArchitecture   *model.Architecture `json:"updated_architecture,omitempty"`
	CanvasAction          string              `json:"canvas_action"`
	UpdatedScope          *ScopeUpdate        `json:"updated_scope,omitempty"`
}

type Service struct {
	client      llm.Client
	retriever   *recommend.Retriever
	catalog     *catalog.Catalog
	synthesizer *diagram.Synthesizer
	sessions    *SessionStore
}

// NewService wires the chat pipeline. A nil client puts the service in
// demo mode: replies are canned but sessions, intent detection, and
// architecture synthesis still work.
func NewService(client llm.Client, retriever *recommend.Retriever, cat *catalog.Catalog, synth *diagram.Synthesizer) *Service {
	return &Service{
		client:      client,
		retriever:   retriever,
		catalog:     cat,
		synthesizer: synth,
		sessions:    NewSessionStore(),
	}
}

func (s *Service) Sessions() *SessionStore { return s.sessions }

func (s *Service) Respond(ctx context.Context, req Request) Response {
	sessionID := s.sessions.GetOrCreate(req.SessionID)
	history, _ := s.sessions.History(sessionID)

	replyText := s.generate(ctx, req, history)

	s.sessions.Append(sessionID,
		Message{Role: "user", Content: req.Message},
		Message{Role: "assistant", Content: replyText},
	)

	var arch *model.Architecture
	canvasAction := "none"
	if DetectCanvasIntent(req.Message) {
		ids := ExtractComponentIDs(s.catalog, req.Message+" "+replyText)
		if len(ids) > 0 {
			log.Printf("Generating architecture from components: %v", ids)
			generated := s.synthesizer.Generate(ids, req.Scope)
			arch = &generated
			canvasAction = "update"
		}
	}

	cleaned, scopeUpdate := extractScopeUpdate(replyText)

	return Response{
		Message:               cleaned,
		SessionID:             sessionID,
		SuggestImplementation: SuggestImplementation(req.Message),
		UpdatedArchitecture:   arch,
		CanvasAction:          canvasAction,
		UpdatedScope:          scopeUpdate,
	}
}

func (s *Service) generate(ctx context.Context, req Request, history []Message) string {
	if s.client == nil {
		return demoReply(req.Message)
	}

	knowledge := ""
	if s.retriever != nil {
		knowledge = s.retriever.Retrieve(ctx, req.Message, contextDocs)
	}

	system := buildSystemPrompt(&req.Scope, knowledge)
	prompt := buildPrompt(system, history, req.Message)

	reply, err := s.client.Generate(ctx, prompt)
	if err != nil {
		log.Printf("LLM generation failed: %v", err)
		return "I apologize, but I encountered an error processing your request. Please try again."
	}
	return reply
}
