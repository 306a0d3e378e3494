package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
)

// GroqBaseURL is Groq's OpenAI-compatible endpoint.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// OpenAI talks to any OpenAI-compatible chat completion API. It serves both
// the groq and openai providers.
type OpenAI struct {
	client      *openai.Client
	provider    string
	model       string
	maxTokens   int
	temperature float32
	logger      logger.Logger
}

// NewOpenAI creates a chat completion client. The groq provider defaults
// to GroqBaseURL; cfg.BaseURL overrides either provider.
func NewOpenAI(cfg config.LLMConfig, log logger.Logger) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKeys[0])
	if cfg.Provider == config.ProviderGroq {
		clientCfg.BaseURL = GroqBaseURL
	}
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(clientCfg),
		provider:    cfg.Provider,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		logger:      log,
	}
}

func (o *OpenAI) Name() string {
	return o.provider
}

// Generate sends prompt as a single user message.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
	})
	if err != nil {
		o.logger.Error(ctx, "%s %s call failed after %s: %v", o.provider, StageFrom(ctx), time.Since(start), err)
		return "", fmt.Errorf("%s api error: %w", o.provider, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s: %w", o.provider, ErrEmptyResponse)
	}

	o.logger.Debug(ctx, "%s %s call done in %s (%d tokens)",
		o.provider, StageFrom(ctx), time.Since(start), resp.Usage.TotalTokens)
	return resp.Choices[0].Message.Content, nil
}
