package chunker

import (
	"strings"
	"unicode"
)

// boundary reports whether a chunk may end right before runes[p].
type boundary func(runes []rune, p int) bool

// Ordered from most to least preferred.
var boundaries = []boundary{
	paragraphEnd,
	lineEnd,
	sentenceEnd,
	wordEnd,
}

func paragraphEnd(runes []rune, p int) bool {
	return p >= 2 && runes[p-1] == '\n' && runes[p-2] == '\n'
}

func lineEnd(runes []rune, p int) bool {
	return p >= 1 && runes[p-1] == '\n'
}

func sentenceEnd(runes []rune, p int) bool {
	if p < 2 || !unicode.IsSpace(runes[p-1]) {
		return false
	}
	switch runes[p-2] {
	case '.', '!', '?':
		return true
	}
	return false
}

func wordEnd(runes []rune, p int) bool {
	return p >= 1 && unicode.IsSpace(runes[p-1])
}

// Split cuts text into chunks. Text no longer than the chunk size comes
// back as a single chunk; empty text yields no chunks.
func (s *implSplitter) Split(text string) []Chunk {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}
	if n <= s.size {
		return []Chunk{{Index: 0, Start: 0, End: n, Text: text}}
	}

	var chunks []Chunk
	start := 0
	for {
		end := start + s.size
		if end >= n {
			chunks = append(chunks, newChunk(runes, len(chunks), start, n))
			return chunks
		}

		cut := s.cutPoint(runes, start, end)
		chunks = append(chunks, newChunk(runes, len(chunks), start, cut))
		start = cut - s.overlap
	}
}

// cutPoint picks the end of the chunk starting at start. Only positions in
// the back half of the window count as natural breaks, and every candidate
// lies past start+overlap so the next chunk always moves forward.
func (s *implSplitter) cutPoint(runes []rune, start, end int) int {
	lo := start + max(s.overlap+1, s.size/2)
	for _, isBoundary := range boundaries {
		for p := end; p >= lo; p-- {
			if isBoundary(runes, p) {
				return p
			}
		}
	}
	return end
}

func newChunk(runes []rune, index, start, end int) Chunk {
	return Chunk{
		Index: index,
		Start: start,
		End:   end,
		Text:  string(runes[start:end]),
	}
}

// Reassemble joins chunks back into the original text, dropping the
// overlapping prefix of every chunk after the first.
func Reassemble(chunks []Chunk) string {
	var b strings.Builder
	for i, c := range chunks {
		if i == 0 {
			b.WriteString(c.Text)
			continue
		}
		overlap := chunks[i-1].End - c.Start
		runes := []rune(c.Text)
		if overlap > len(runes) {
			overlap = len(runes)
		}
		b.WriteString(string(runes[overlap:]))
	}
	return b.String()
}
