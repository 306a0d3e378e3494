package input

import (
	"context"
	"errors"
)

var (
	// ErrInputMissing means there is no speech text to summarize.
	ErrInputMissing = errors.New("please paste a speech or upload a file")
	// ErrUnsupportedFile means the upload is neither .txt nor .pdf.
	ErrUnsupportedFile = errors.New("unsupported file type, expected .txt or .pdf")
	// ErrExtraction means a PDF could not be parsed.
	ErrExtraction = errors.New("pdf text extraction failed")
)

// Upload is an uploaded file held in memory.
type Upload struct {
	Name string
	Data []byte
}

// Source is everything the user submitted. File wins over Text.
type Source struct {
	Text string
	File *Upload
}

// Acquirer turns a Source into the raw speech text.
type Acquirer interface {
	Acquire(ctx context.Context, src Source) (string, error)
}

// PDFExtractor returns the text of every page, in page order, concatenated.
type PDFExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}
