package llm

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
)

// New builds the client for the configured provider, instrumented with
// Prometheus metrics.
func New(ctx context.Context, cfg config.LLMConfig, log logger.Logger) (Client, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("no API key for provider %s (set %s)", cfg.Provider, cfg.APIKeyEnv)
	}

	var (
		client Client
		err    error
	)

	switch cfg.Provider {
	case config.ProviderGroq, config.ProviderOpenAI:
		client = NewOpenAI(cfg, log)
	case config.ProviderGemini:
		client, err = NewGemini(ctx, cfg, log)
	case config.ProviderAnthropic:
		client = NewAnthropic(cfg, log)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "Model client ready: provider=%s model=%s", cfg.Provider, cfg.Model)
	return Instrument(client, NewPrometheusCallMetrics()), nil
}
