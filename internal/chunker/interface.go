package chunker

// Chunk is a contiguous slice of the input text. Start and End are rune
// offsets into the original text, End exclusive.
type Chunk struct {
	Index int
	Start int
	End   int
	Text  string
}

// Len returns the chunk length in runes.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Splitter cuts text into overlapping chunks.
type Splitter interface {
	Split(text string) []Chunk
	Size() int
	Overlap() int
}
