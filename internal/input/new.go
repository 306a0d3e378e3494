package input

import (
	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/pkg/executor"
)

type implAcquirer struct {
	pdf    PDFExtractor
	logger logger.Logger
}

// New creates an Acquirer using the given PDF extractor.
func New(pdf PDFExtractor, log logger.Logger) Acquirer {
	return &implAcquirer{
		pdf:    pdf,
		logger: log,
	}
}

// NewPDFExtractor picks the extractor backend named in cfg.
func NewPDFExtractor(cfg config.PDFConfig, exec executor.Executor, log logger.Logger) PDFExtractor {
	if cfg.Extractor == config.ExtractorPdftotext {
		return &pdftotextExtractor{
			binary:   cfg.PdftotextPath,
			executor: exec,
		}
	}
	return &nativeExtractor{logger: log}
}
