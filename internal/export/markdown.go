// Package export writes summaries as Markdown and Word documents.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Markdown renders a summary document with a title and generation date.
func Markdown(title, summary string, generated time.Time) string {
	return fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		title,
		generated.Format("2006-01-02 15:04"),
		strings.TrimSpace(summary),
	)
}

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockBullet
	blockNumbered
)

// block is one rendered line of a summary.
type block struct {
	kind  blockKind
	level int
	text  string
}

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*•]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+[.)]\s+(.+)$`)
)

// parseBlocks splits model output into blocks. Blank lines and rules are
// dropped.
func parseBlocks(markdown string) []block {
	var blocks []block
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" || trimmed == "***" {
			continue
		}

		switch {
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			blocks = append(blocks, block{kind: blockHeading, level: len(m[1]), text: m[2]})
		case reBullet.MatchString(trimmed):
			m := reBullet.FindStringSubmatch(trimmed)
			blocks = append(blocks, block{kind: blockBullet, text: m[1]})
		case reNumbered.MatchString(trimmed):
			blocks = append(blocks, block{kind: blockNumbered, text: trimmed})
		default:
			blocks = append(blocks, block{kind: blockParagraph, text: trimmed})
		}
	}
	return blocks
}

// span is a run of inline text, bold or not.
type span struct {
	text string
	bold bool
}

func inlineSpans(text string) []span {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	var spans []span
	for i, part := range parts {
		if part != "" {
			spans = append(spans, span{text: cleanInline(part)})
		}
		if i < len(matches) {
			spans = append(spans, span{text: cleanInline(matches[i][1]), bold: true})
		}
	}
	return spans
}

func cleanInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
