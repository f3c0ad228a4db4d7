package chat

import (
	"context"
	"log"

	"github.com/cloudwego/eino/components/model"
)

const (
	systemPrompt = "Du bist eine freundliche, DSGVO-konforme KI-Assistenz für Therapeut:innen. " +
		"Antworte professionell und hilfsbereit auf Deutsch."
	attachmentClause = " Der Benutzer hat Dateien angehängt. " +
		"Gib hilfreiche Hinweise zur therapeutischen Nutzung der bereitgestellten Informationen."

	replyMaxTokens   = 1000
	replyTemperature = float32(0.7)
)

// Completer is the gateway surface the chat service depends on.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts ...model.Option) (string, error)
}

// Service answers chat messages, through the LLM gateway when one is
// configured and through the local mock generator otherwise.
type Service struct {
	llm Completer
}

// NewService constructs the chat service. A nil completer enables mock mode.
func NewService(llm Completer) *Service {
	return &Service{llm: llm}
}

// Reply produces the answer for one chat message. It never fails: any
// gateway error degrades to the deterministic mock reply.
func (s *Service) Reply(ctx context.Context, message string, hasAttachments bool) string {
	if s.llm == nil {
		return MockReply(message, hasAttachments)
	}
	prompt := systemPrompt
	if hasAttachments {
		prompt += attachmentClause
	}
	reply, err := s.llm.Complete(ctx, prompt, message,
		model.WithMaxTokens(replyMaxTokens),
		model.WithTemperature(replyTemperature))
	if err != nil {
		log.Printf("chat completion failed, using mock reply: %v", err)
		return MockReply(message, hasAttachments)
	}
	return reply
}
