package input

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Acquire returns the speech text from the uploaded file when there is one,
// otherwise the pasted text. Blank results are ErrInputMissing.
func (a *implAcquirer) Acquire(ctx context.Context, src Source) (string, error) {
	text := src.Text
	origin := "pasted text"

	if src.File != nil {
		var err error
		origin = src.File.Name
		switch Kind(src.File.Name) {
		case KindText:
			text = DecodeText(src.File.Data)
		case KindPDF:
			text, err = a.pdf.Extract(ctx, src.File.Data)
			if err != nil {
				return "", fmt.Errorf("extract %s: %w", src.File.Name, err)
			}
		default:
			return "", fmt.Errorf("%s: %w", src.File.Name, ErrUnsupportedFile)
		}
	}

	if strings.TrimSpace(text) == "" {
		a.logger.Info(ctx, "No speech text found in %s", origin)
		return "", ErrInputMissing
	}

	a.logger.Info(ctx, "Acquired %d characters from %s", len([]rune(text)), origin)
	return text, nil
}

// FileKind classifies uploads by extension.
type FileKind int

const (
	KindUnsupported FileKind = iota
	KindText
	KindPDF
)

// Kind returns the FileKind for a file name, ignoring extension case.
func Kind(name string) FileKind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return KindText
	case ".pdf":
		return KindPDF
	default:
		return KindUnsupported
	}
}

// IsSupported reports whether name has a .txt or .pdf extension.
func IsSupported(name string) bool {
	return Kind(name) != KindUnsupported
}

// DecodeText decodes an uploaded text file as UTF-8. A byte order mark
// switches to the matching Unicode encoding; invalid bytes are dropped.
func DecodeText(data []byte) string {
	dec := unicode.BOMOverride(transform.Nop)
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		out = data
	}
	text := strings.ToValidUTF8(string(out), "")
	return strings.ReplaceAll(text, "\uFFFD", "")
}
