package export

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSummary = `# Courage in Hard Times

An introduction to the speech.

1. **Unity** matters more than ever.
2. Keep ` + "`hope`" + ` alive.

- first point
* second point

---
`

func TestMarkdown(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	got := Markdown("Speech", "  Final summary.\n", at)
	assert.Equal(t, "# Speech\n\n_2024-03-09 14:05_\n\nFinal summary.\n", got)
}

func TestParseBlocks(t *testing.T) {
	want := []block{
		{kind: blockHeading, level: 1, text: "Courage in Hard Times"},
		{kind: blockParagraph, text: "An introduction to the speech."},
		{kind: blockNumbered, text: "1. **Unity** matters more than ever."},
		{kind: blockNumbered, text: "2. Keep `hope` alive."},
		{kind: blockBullet, text: "first point"},
		{kind: blockBullet, text: "second point"},
	}
	assert.Equal(t, want, parseBlocks(sampleSummary))
}

func TestInlineSpans(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []span
	}{
		{"plain", "just text", []span{{text: "just text"}}},
		{"bold middle", "a **b** c", []span{{text: "a "}, {text: "b", bold: true}, {text: " c"}}},
		{"bold start", "**Title** rest", []span{{text: "Title", bold: true}, {text: " rest"}}},
		{"code stripped", "use `go`", []span{{text: "use go"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inlineSpans(tt.in))
		})
	}
}

func TestFontFor(t *testing.T) {
	assert.Equal(t, fontLatin, fontFor("Liberté, égalité"))
	assert.Equal(t, fontDevanagari, fontFor("सारांश: unity"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Speech_Summary.docx", FileName("Speech Summary"))
	assert.Equal(t, "summary.docx", FileName("  ///  "))
	assert.Equal(t, "talk-2024.docx", FileName("talk-2024"))
}

func readDocumentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatal("word/document.xml not found")
	return ""
}

func TestDOCX(t *testing.T) {
	data, err := DOCX("Speech Summary", sampleSummary)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("PK")), "docx must be a zip archive")

	xml := readDocumentXML(t, data)
	for _, want := range []string{"Speech Summary", "Courage in Hard Times", "Unity", "second point"} {
		assert.Contains(t, xml, want)
	}
	assert.NotContains(t, xml, "**")
}

func TestWriteDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, WriteDOCX("Title", "Body text", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
