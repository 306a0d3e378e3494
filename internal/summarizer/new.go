package summarizer

import (
	"fmt"
	"text/template"

	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/llm"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
)

type implSummarizer struct {
	client        llm.Client
	mapPrompt     *template.Template
	reducePrompt  *template.Template
	maxConcurrent int
	logger        logger.Logger
}

// New creates a Summarizer backed by client. At most maxConcurrent chunk
// summaries are requested at once; zero or less means one at a time.
func New(client llm.Client, prompts config.PromptsConfig, maxConcurrent int, log logger.Logger) (Summarizer, error) {
	mapTmpl, err := template.New("map").Parse(prompts.Map)
	if err != nil {
		return nil, fmt.Errorf("parse map prompt: %w", err)
	}
	reduceTmpl, err := template.New("reduce").Parse(prompts.Reduce)
	if err != nil {
		return nil, fmt.Errorf("parse reduce prompt: %w", err)
	}
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &implSummarizer{
		client:        client,
		mapPrompt:     mapTmpl,
		reducePrompt:  reduceTmpl,
		maxConcurrent: maxConcurrent,
		logger:        log,
	}, nil
}
