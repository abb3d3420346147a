package router

import (
	"context"

	"library-assistant/pkg/gemini"
	"library-assistant/pkg/log"
)

// Router is the interface for intent classification.
type Router interface {
	Classify(ctx context.Context, message string, conversationHistory []string) Output
}

// IntentRouter classifies user intent using the LLM. It fails closed:
// every failure mode resolves to the general_chat fallback so the chat
// flow stays available.
type IntentRouter struct {
	llm gemini.IGemini
	l   log.Logger
}

var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter.
func New(llm gemini.IGemini, l log.Logger) *IntentRouter {
	return &IntentRouter{
		llm: llm,
		l:   l,
	}
}
