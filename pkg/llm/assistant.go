// Package llm answers free-form questions through an OpenAI-compatible
// chat endpoint.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/brieflyhq/briefly/pkg/config"
)

// Assistant asks an OpenAI-compatible model to answer user questions
type Assistant struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewAssistant creates an LLM-backed assistant
func NewAssistant(cfg config.LLMConfig) *Assistant {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Assistant{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

const defaultSystemPrompt = `You are Briefly, a comprehensive daily assistant. Help the user with weather, calendar planning, success coaching, and news briefings.

NEWS BRIEFING GUIDANCE:
- For news queries, provide 3-5 relevant updates about technology and AI, productivity research, health and wellness, and local community updates when location is known
- Group news by category and keep each story to 1-2 sentences
- Start with a friendly greeting and end with a positive note or call to action

Always personalize based on user context when possible and keep answers concise.`

// Enabled reports whether the assistant is configured with an endpoint
// and model
func (a *Assistant) Enabled() bool {
	return a.config.Endpoint != "" && a.config.Model != ""
}

// Answer sends the question to the model and returns its reply. Callers
// fall back to the rule-based responder on error.
func (a *Assistant) Answer(ctx context.Context, question string) (string, error) {
	if !a.Enabled() {
		return "", fmt.Errorf("llm assistant not configured")
	}

	req := openai.ChatCompletionRequest{
		Model:       a.config.Model,
		Temperature: float32(a.config.Temperature),
		MaxTokens:   a.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: a.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return answer, nil
}
