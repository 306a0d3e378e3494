package input

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/pkg/executor"
)

type nativeExtractor struct {
	logger logger.Logger
}

// Extract parses the PDF in memory. Pages whose text cannot be read count
// as empty; a document that cannot be opened is ErrExtraction.
func (e *nativeExtractor) Extract(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		// the pdf package panics on some malformed object graphs
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	var b strings.Builder
	fonts := make(map[string]*pdf.Font)
	pages := reader.NumPage()

	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}

		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			e.logger.Warn(ctx, "No extractable text on page %d/%d: %v", i, pages, err)
			continue
		}
		b.WriteString(pageText)
	}

	e.logger.Debug(ctx, "Extracted %d pages from PDF", pages)
	return b.String(), nil
}

type pdftotextExtractor struct {
	binary   string
	executor executor.Executor
}

// Extract runs poppler's pdftotext on a temp copy of the upload. Form feeds
// between pages are removed so pages join with no separator.
func (e *pdftotextExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "speech-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp pdf: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp pdf: %w", err)
	}

	out, err := e.executor.Execute(ctx, e.binary, "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	return strings.ReplaceAll(out, "\f", ""), nil
}
