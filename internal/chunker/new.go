package chunker

import "fmt"

const (
	DefaultSize    = 2000
	DefaultOverlap = 100
)

type implSplitter struct {
	size    int
	overlap int
}

// New creates a Splitter producing chunks of at most size runes, each
// chunk after the first starting overlap runes before the previous end.
func New(size, overlap int) (Splitter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("chunk overlap cannot be negative, got %d", overlap)
	}
	if overlap >= size {
		return nil, fmt.Errorf("chunk overlap %d must be smaller than size %d", overlap, size)
	}
	return &implSplitter{size: size, overlap: overlap}, nil
}

func (s *implSplitter) Size() int    { return s.size }
func (s *implSplitter) Overlap() int { return s.overlap }
