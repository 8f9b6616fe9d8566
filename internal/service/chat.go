package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmarek/space-voyages/backend/internal/domain"
)

// chatPersona is the fixed system instruction prepended to every chat-widget
// conversation before it is forwarded upstream.
const chatPersona = "You are a friendly and knowledgeable space travel assistant. " +
	"Provide helpful information about space travel destinations, spacecraft, " +
	"and booking processes. Keep responses concise, informative, and exciting. " +
	"Use a futuristic, optimistic tone."

// ChatService forwards a chat-widget conversation to the text-generation API
// and returns the next assistant turn. It never touches the package store.
type ChatService struct {
	gen TextGenerator
	log *slog.Logger
}

// NewChatService constructs a ChatService.
func NewChatService(gen TextGenerator, log *slog.Logger) *ChatService {
	return &ChatService{gen: gen, log: log}
}

// Reply maps the conversation into the upstream role vocabulary, prepends the
// persona instruction, and returns the generated reply. The conversation must
// contain at least one turn. Upstream failures surface as domain.ErrUpstream;
// the handler presents a static fallback instead of the raw error.
func (s *ChatService) Reply(ctx context.Context, conversation []domain.ChatTurn) (string, error) {
	if len(conversation) == 0 {
		return "", fmt.Errorf("service.ChatService.Reply: %w: conversation is required", domain.ErrValidation)
	}

	msgs := make([]domain.PromptMessage, len(conversation))
	for i, turn := range conversation {
		role := domain.RoleAssistant
		if turn.FromUser() {
			role = domain.RoleUser
		}
		msgs[i] = domain.PromptMessage{Role: role, Content: turn.Text}
	}

	reply, err := s.gen.Generate(ctx, domain.Prompt{
		System:      chatPersona,
		Messages:    msgs,
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		s.log.Error("chat: text generation failed", "error", err)
		return "", fmt.Errorf("service.ChatService.Reply: %w: %w", domain.ErrUpstream, err)
	}
	return reply, nil
}
