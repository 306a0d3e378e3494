package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontLatin      = "Times New Roman"
	fontDevanagari = "Mangal"
	fontSize       = 13
	titleSize      = 16
	textColor      = "000000"
)

// WriteDOCX renders a summary as a styled Word document at path.
func WriteDOCX(title, summary, path string) error {
	font := fontFor(title + summary)

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), font, cleanInline(title), true, titleSize)

	for _, b := range parseBlocks(summary) {
		p := doc.AddParagraph("")
		switch b.kind {
		case blockHeading:
			addRun(p, font, cleanInline(b.text), true, headingSize(b.level))
		case blockBullet:
			addSpans(p, font, "• "+b.text)
		default:
			addSpans(p, font, b.text)
		}
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// DOCX returns the Word document bytes for a summary.
func DOCX(title, summary string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "speech-digest-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "summary.docx")
	if err := WriteDOCX(title, summary, path); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// FileName turns a title into a safe .docx download name.
func FileName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			return r
		case unicode.IsSpace(r):
			return '_'
		default:
			return -1
		}
	}, strings.TrimSpace(title))
	if name == "" {
		name = "summary"
	}
	return name + ".docx"
}

// fontFor picks a font able to render Devanagari when the text needs it.
func fontFor(text string) string {
	for _, r := range text {
		if unicode.Is(unicode.Devanagari, r) {
			return fontDevanagari
		}
	}
	return fontLatin
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addRun(p *docx.Paragraph, font, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(font).Size(size).Color(textColor)
	if bold {
		run.Bold(true)
	}
}

func addSpans(p *docx.Paragraph, font, text string) {
	for _, s := range inlineSpans(text) {
		addRun(p, font, s.text, s.bold, fontSize)
	}
}
