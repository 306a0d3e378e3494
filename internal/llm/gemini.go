package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
)

// Gemini calls the Gemini API and rotates through its API keys when one
// runs into a quota limit.
type Gemini struct {
	clients     []*genai.Client
	model       string
	maxTokens   int32
	temperature float32
	logger      logger.Logger

	mu         sync.Mutex
	currentKey int
}

// NewGemini creates one genai client per configured API key.
func NewGemini(ctx context.Context, cfg config.LLMConfig, log logger.Logger) (*Gemini, error) {
	g := &Gemini{
		model:       cfg.Model,
		maxTokens:   int32(cfg.MaxTokens),
		temperature: cfg.Temperature,
		logger:      log,
	}

	for i, key := range cfg.APIKeys {
		cc := &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		}
		if cfg.BaseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
		}
		client, err := genai.NewClient(ctx, cc)
		if err != nil {
			return nil, fmt.Errorf("create gemini client for key %d: %w", i+1, err)
		}
		g.clients = append(g.clients, client)
	}

	return g, nil
}

func (g *Gemini) Name() string {
	return config.ProviderGemini
}

// Generate tries each key at most once, moving on only for quota errors.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	var genCfg *genai.GenerateContentConfig
	if g.maxTokens > 0 || g.temperature > 0 {
		genCfg = &genai.GenerateContentConfig{MaxOutputTokens: g.maxTokens}
		if g.temperature > 0 {
			genCfg.Temperature = genai.Ptr(g.temperature)
		}
	}

	var lastErr error
	for range g.clients {
		idx := g.key()

		result, err := g.clients[idx].Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("gemini api error: %w", err)
		}

		if text := result.Text(); text != "" {
			return text, nil
		}
		return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}

	return "", fmt.Errorf("all gemini API keys exhausted: %w", lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (g *Gemini) key() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey
}

// rotateKey advances past failed, unless another call already did.
func (g *Gemini) rotateKey(failed int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == failed {
		g.currentKey = (g.currentKey + 1) % len(g.clients)
	}
}
