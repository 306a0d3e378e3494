package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/speech-digest/internal/translator"
)

// Process orchestrates one run: acquire, chunk, summarize, then translate
// when a language other than the default is requested. Any stage failure
// aborts the run.
func (p *implProcessor) Process(ctx context.Context, req Request) (result *Result, err error) {
	startTime := time.Now()
	lang := req.Language
	if lang == "" {
		lang = translator.Default
	}

	defer func() {
		p.metrics.RecordRun(time.Since(startTime), err)
	}()

	// Step 1: Acquire speech text
	text, err := p.acquirer.Acquire(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	// Step 2: Split into overlapping chunks
	chunks := p.splitter.Split(text)
	p.metrics.RecordChunks(len(chunks))
	p.logger.Info(ctx, "Split %d runes into %d chunks (size %d, overlap %d)",
		len([]rune(text)), len(chunks), p.splitter.Size(), p.splitter.Overlap())

	// Step 3: Map-reduce summary
	summary, err := p.summarizer.Summarize(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	result = &Result{
		Summary:    summary,
		Language:   translator.Default,
		ChunkCount: len(chunks),
	}

	// Step 4: Translate
	if !lang.IsDefault() {
		translated, err := p.translator.Translate(ctx, summary, lang)
		if err != nil {
			return nil, fmt.Errorf("translate: %w", err)
		}
		result.Summary = translated
		result.Language = lang
		result.Translated = true
	}

	result.Duration = time.Since(startTime)
	p.logger.Info(ctx, "Run finished: %d chunks, language %s, took %s",
		result.ChunkCount, result.Language, result.Duration.Round(time.Millisecond))

	return result, nil
}
