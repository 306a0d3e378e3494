package web

import (
	"time"

	"github.com/nguyentantai21042004/speech-digest/internal/processor"
	"github.com/nguyentantai21042004/speech-digest/internal/translator"
)

// state is the page's position in the Idle -> Running -> Done cycle.
// Running only exists in the browser while the form is submitted.
type state string

const (
	stateIdle state = "idle"
	stateDone state = "done"
)

// infoInputMissing is shown when the form is submitted without a speech.
const infoInputMissing = "Please paste a speech or upload a file and click 'Generate Summary'."

type page struct {
	State     state
	Languages []translator.Language
	Selected  translator.Language
	Text      string
	Info      string
	Error     string

	Summary    string
	Language   translator.Language
	Translated bool
	ChunkCount int
	Duration   string
}

func idlePage(lang translator.Language, text string) page {
	return page{
		State:     stateIdle,
		Languages: translator.Languages,
		Selected:  lang,
		Text:      text,
	}
}

func donePage(lang translator.Language, text string, res *processor.Result) page {
	p := idlePage(lang, text)
	p.State = stateDone
	p.Summary = res.Summary
	p.Language = res.Language
	p.Translated = res.Translated
	p.ChunkCount = res.ChunkCount
	p.Duration = res.Duration.Round(time.Millisecond).String()
	return p
}

// summaryResponse is the JSON body of /api/summarize.
type summaryResponse struct {
	Summary    string `json:"summary"`
	Language   string `json:"language"`
	Translated bool   `json:"translated"`
	ChunkCount int    `json:"chunk_count"`
	DurationMS int64  `json:"duration_ms"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
