package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/speech-digest/internal/input"
	"github.com/nguyentantai21042004/speech-digest/internal/translator"
)

// Processor runs the summarization pipeline.
type Processor interface {
	// Process turns one speech into a summary in the requested language.
	Process(ctx context.Context, req Request) (*Result, error)
	// ProcessFile summarizes a speech file dropped into the inbox and writes
	// the Markdown and Word outputs next to each other.
	ProcessFile(ctx context.Context, path string) error
}

type Request struct {
	Source   input.Source
	Language translator.Language
}

type Result struct {
	Summary string
	// Language is the language Summary is written in.
	Language   translator.Language
	Translated bool
	ChunkCount int
	Duration   time.Duration
}
