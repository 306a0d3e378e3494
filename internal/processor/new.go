package processor

import (
	"github.com/nguyentantai21042004/speech-digest/internal/chunker"
	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/input"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/summarizer"
	"github.com/nguyentantai21042004/speech-digest/internal/translator"
)

type implProcessor struct {
	cfg        *config.Config
	acquirer   input.Acquirer
	splitter   chunker.Splitter
	summarizer summarizer.Summarizer
	translator translator.Translator
	metrics    RunMetrics
	logger     logger.Logger
}

// New creates a Processor from its pipeline stages.
func New(
	cfg *config.Config,
	acquirer input.Acquirer,
	splitter chunker.Splitter,
	sum summarizer.Summarizer,
	tr translator.Translator,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:        cfg,
		acquirer:   acquirer,
		splitter:   splitter,
		summarizer: sum,
		translator: tr,
		metrics:    NewPrometheusRunMetrics(),
		logger:     log,
	}
}
