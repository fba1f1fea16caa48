package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zhouzirui/expert-chat/backend/internal/config"
)

// Service sends one system prompt plus one user message to the chat model
// and returns the completion text.
type Service struct {
	model string
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates a new AI service instance. Without a credential the
// service is still returned, and every Complete call fails with a
// ProviderError instead of reaching the network.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	if !cfg.HasCredential() {
		log.Printf("[ai] no api key configured, completion requests will fail")
		return &Service{model: cfg.Model}, nil
	}

	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	log.Printf("[ai] chat model %s ready (credential from %s)", cfg.Model, cfg.CredentialSource)
	return NewServiceWithModel(ctx, chatModel, cfg.Model)
}

// NewServiceWithModel builds the service around an existing chat model.
func NewServiceWithModel(ctx context.Context, chatModel model.ChatModel, modelName string) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{model: modelName, chain: runnable}, nil
}

// Complete performs exactly one blocking request with messages
// [system: systemPrompt, user: userText]. Callers must not pass empty userText.
func (s *Service) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	if s.chain == nil {
		return "", &ProviderError{Model: s.model, Err: ErrCredentialMissing}
	}

	response, err := s.chain.Invoke(ctx, map[string]any{
		"system": systemPrompt,
		"query":  userText,
	})
	if err != nil {
		log.Printf("[ai] completion failed, model=%s: %v", s.model, err)
		return "", &ProviderError{Model: s.model, Err: err}
	}
	if response == nil {
		return "", nil
	}

	log.Printf("[ai] generated response, model=%s, length=%d", s.model, len(response.Content))
	return response.Content, nil
}
