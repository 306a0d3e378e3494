package translator

import (
	"fmt"
	"text/template"

	"github.com/nguyentantai21042004/speech-digest/internal/llm"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
)

type implTranslator struct {
	client llm.Client
	prompt *template.Template
	logger logger.Logger
}

// New creates a Translator issuing one model call per translation. prompt
// is a text/template receiving {{.Text}} and {{.Language}}.
func New(client llm.Client, prompt string, log logger.Logger) (Translator, error) {
	tmpl, err := template.New("translate").Parse(prompt)
	if err != nil {
		return nil, fmt.Errorf("parse translate prompt: %w", err)
	}
	return &implTranslator{client: client, prompt: tmpl, logger: log}, nil
}
