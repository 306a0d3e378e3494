package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/speech-digest/internal/chunker"
)

// Summarizer condenses a chunked speech with one model call per chunk
// followed by a single combining call.
type Summarizer interface {
	// SummarizeChunk produces the partial summary of one chunk.
	SummarizeChunk(ctx context.Context, text string) (string, error)
	// CombineSummaries merges partial summaries, in order, into the final one.
	CombineSummaries(ctx context.Context, partials []string) (string, error)
	// Summarize runs the map stage over chunks and then the reduce stage.
	Summarize(ctx context.Context, chunks []chunker.Chunk) (string, error)
}
