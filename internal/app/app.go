// Package app assembles the pipeline shared by the command line tools.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/speech-digest/internal/chunker"
	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/input"
	"github.com/nguyentantai21042004/speech-digest/internal/llm"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/processor"
	"github.com/nguyentantai21042004/speech-digest/internal/summarizer"
	"github.com/nguyentantai21042004/speech-digest/internal/translator"
	"github.com/nguyentantai21042004/speech-digest/pkg/executor"
)

// LoadConfig reads .env (when present) and the YAML config at path. A
// missing config file falls back to defaults.
func LoadConfig(path string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// NewProcessor builds every pipeline stage from cfg.
func NewProcessor(ctx context.Context, cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	client, err := llm.New(ctx, cfg.LLM, log)
	if err != nil {
		return nil, fmt.Errorf("create model client: %w", err)
	}

	splitter, err := chunker.New(cfg.Chunking.Size, cfg.Chunking.Overlap)
	if err != nil {
		return nil, fmt.Errorf("create chunker: %w", err)
	}

	sum, err := summarizer.New(client, cfg.Prompts, cfg.Performance.MaxConcurrent, log)
	if err != nil {
		return nil, fmt.Errorf("create summarizer: %w", err)
	}

	tr, err := translator.New(client, cfg.Prompts.Translate, log)
	if err != nil {
		return nil, fmt.Errorf("create translator: %w", err)
	}

	pdf := input.NewPDFExtractor(cfg.PDF, executor.New(), log)
	acquirer := input.New(pdf, log)

	return processor.New(cfg, acquirer, splitter, sum, tr, log), nil
}
