package chat

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/zhouzirui/expert-chat/backend/internal/model/chat"
	"github.com/zhouzirui/expert-chat/backend/internal/model/persona"
)

var ErrEmptyQuestion = errors.New("question is required")

// Completer issues a single completion request.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// PromptResolver maps a persona label to its system prompt.
type PromptResolver interface {
	SystemPrompt(label string) string
}

// Service runs one question through persona resolution and the completer.
// It holds no per-request state.
type Service struct {
	prompts   PromptResolver
	personas  persona.Store
	completer Completer
}

// NewService wires the pipeline.
func NewService(prompts PromptResolver, personas persona.Store, completer Completer) *Service {
	return &Service{
		prompts:   prompts,
		personas:  personas,
		completer: completer,
	}
}

// Personas lists the selectable personas.
func (s *Service) Personas() []persona.Persona {
	return s.personas.List()
}

// Ask answers question in the voice of the persona labelled label. An empty
// question returns ErrEmptyQuestion without contacting the provider;
// whitespace-only text is sent as is. Provider failures are returned unchanged.
func (s *Service) Ask(ctx context.Context, label, question string) (chat.Answer, error) {
	if question == "" {
		return chat.Answer{}, ErrEmptyQuestion
	}

	p := s.personas.Lookup(label)
	systemPrompt := s.prompts.SystemPrompt(string(p.ID))

	content, err := s.completer.Complete(ctx, systemPrompt, question)
	if err != nil {
		return chat.Answer{}, err
	}

	answer := chat.Answer{
		ID:        uuid.NewString(),
		PersonaID: string(p.ID),
		Question:  question,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	log.Printf("[chat] answered question id=%s persona=%s", answer.ID, answer.PersonaID)
	return answer, nil
}
