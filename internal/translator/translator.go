package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/speech-digest/internal/llm"
)

// Translate returns summary unchanged for the default language.
func (t *implTranslator) Translate(ctx context.Context, summary string, lang Language) (string, error) {
	if lang.IsDefault() {
		return summary, nil
	}

	var b strings.Builder
	err := t.prompt.Execute(&b, struct {
		Text     string
		Language string
	}{summary, lang.String()})
	if err != nil {
		return "", fmt.Errorf("render translate prompt: %w", err)
	}

	t.logger.Info(ctx, "Translating summary to %s", lang)
	out, err := t.client.Generate(llm.WithStage(ctx, llm.StageTranslate), b.String())
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", lang, err)
	}
	return strings.TrimSpace(out), nil
}
