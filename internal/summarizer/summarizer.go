package summarizer

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/speech-digest/internal/chunker"
	"github.com/nguyentantai21042004/speech-digest/internal/input"
	"github.com/nguyentantai21042004/speech-digest/internal/llm"
)

// partialSeparator joins partial summaries before the reduce call.
const partialSeparator = "\n\n"

func (s *implSummarizer) SummarizeChunk(ctx context.Context, text string) (string, error) {
	prompt, err := render(s.mapPrompt, text)
	if err != nil {
		return "", err
	}

	out, err := s.client.Generate(llm.WithStage(ctx, llm.StageMap), prompt)
	if err != nil {
		return "", fmt.Errorf("summarize chunk: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (s *implSummarizer) CombineSummaries(ctx context.Context, partials []string) (string, error) {
	prompt, err := render(s.reducePrompt, strings.Join(partials, partialSeparator))
	if err != nil {
		return "", err
	}

	out, err := s.client.Generate(llm.WithStage(ctx, llm.StageReduce), prompt)
	if err != nil {
		return "", fmt.Errorf("combine summaries: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Summarize stops at the first failed chunk; the reduce call is only made
// once every partial summary is available.
func (s *implSummarizer) Summarize(ctx context.Context, chunks []chunker.Chunk) (string, error) {
	if len(chunks) == 0 {
		return "", input.ErrInputMissing
	}

	start := time.Now()
	s.logger.Info(ctx, "Summarizing %d chunks with %s (max %d in flight)", len(chunks), s.client.Name(), s.maxConcurrent)

	partials := make([]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i, ch := range chunks {
		g.Go(func() error {
			s.logger.Debug(gctx, "[%d/%d] Summarizing chunk (%d runes)", i+1, len(chunks), ch.Len())

			partial, err := s.SummarizeChunk(gctx, ch.Text)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", ch.Index, err)
			}
			partials[i] = partial
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error(ctx, "Map stage failed: %v", err)
		return "", err
	}
	s.logger.Info(ctx, "Map stage done in %s", time.Since(start).Round(time.Millisecond))

	summary, err := s.CombineSummaries(ctx, partials)
	if err != nil {
		s.logger.Error(ctx, "Reduce stage failed: %v", err)
		return "", err
	}

	s.logger.Info(ctx, "Summary ready in %s", time.Since(start).Round(time.Millisecond))
	return summary, nil
}

func render(t *template.Template, text string) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, struct{ Text string }{text}); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", t.Name(), err)
	}
	return b.String(), nil
}
