package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/export"
	"github.com/nguyentantai21042004/speech-digest/internal/input"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/processor"
	"github.com/nguyentantai21042004/speech-digest/internal/translator"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var errBadRequest = errors.New("bad request")

type handler struct {
	cfg       *config.Config
	processor processor.Processor
	logger    logger.Logger
}

func (h *handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", idlePage(translator.Default, ""))
}

// summarize runs one pipeline for the submitted form and renders the result.
func (h *handler) summarize(c *gin.Context) {
	text := c.PostForm("speech_text")

	req, err := h.readRequest(c)
	if err != nil {
		p := idlePage(req.Language, text)
		p.Error = err.Error()
		c.HTML(http.StatusBadRequest, "index.html", p)
		return
	}

	res, err := h.run(c, req)
	if err != nil {
		status, msg := h.classify(c.Request.Context(), err)
		p := idlePage(req.Language, text)
		if status == http.StatusOK {
			p.Info = msg
		} else {
			p.Error = msg
		}
		c.HTML(status, "index.html", p)
		return
	}

	c.HTML(http.StatusOK, "index.html", donePage(req.Language, text, res))
}

func (h *handler) summarizeJSON(c *gin.Context) {
	req, err := h.readRequest(c)
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.run(c, req)
	if err != nil {
		status, msg := h.classify(c.Request.Context(), err)
		if status == http.StatusOK {
			status = http.StatusUnprocessableEntity
		}
		h.jsonError(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, summaryResponse{
		Summary:    res.Summary,
		Language:   res.Language.String(),
		Translated: res.Translated,
		ChunkCount: res.ChunkCount,
		DurationMS: res.Duration.Milliseconds(),
	})
}

// exportDOCX turns a rendered summary into a Word download.
func (h *handler) exportDOCX(c *gin.Context) {
	summary := strings.TrimSpace(c.PostForm("summary"))
	if summary == "" {
		c.String(http.StatusBadRequest, "nothing to export")
		return
	}

	title := "Speech Summary"
	if lang, err := translator.ParseLanguage(c.PostForm("language")); err == nil && !lang.IsDefault() {
		title = fmt.Sprintf("Speech Summary (%s)", lang)
	}

	data, err := export.DOCX(title, summary)
	if err != nil {
		h.logger.Error(c.Request.Context(), "Failed to build docx: %v", err)
		c.String(http.StatusInternalServerError, "could not build document")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(title)))
	c.Data(http.StatusOK, docxContentType, data)
}

// readRequest validates the form before anything reaches the pipeline. The
// returned request carries the parsed language even on error.
func (h *handler) readRequest(c *gin.Context) (processor.Request, error) {
	req := processor.Request{Language: translator.Default}

	lang, err := translator.ParseLanguage(c.PostForm("language"))
	if err != nil {
		return req, err
	}
	req.Language = lang
	req.Source.Text = c.PostForm("speech_text")

	fh, err := c.FormFile("speech_file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return req, nil
	case err != nil:
		return req, fmt.Errorf("%w: read upload: %v", errBadRequest, err)
	}

	if !input.IsSupported(fh.Filename) {
		return req, fmt.Errorf("%w: %s", input.ErrUnsupportedFile, fh.Filename)
	}

	f, err := fh.Open()
	if err != nil {
		return req, fmt.Errorf("%w: open upload: %v", errBadRequest, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return req, fmt.Errorf("%w: read upload: %v", errBadRequest, err)
	}
	req.Source.File = &input.Upload{Name: fh.Filename, Data: data}
	return req, nil
}

// run executes the pipeline on a context that outlives a client disconnect
// but not the configured timeout.
func (h *handler) run(c *gin.Context, req processor.Request) (*processor.Result, error) {
	ctx := context.WithoutCancel(c.Request.Context())
	ctx, cancel := context.WithTimeout(ctx, time.Duration(h.cfg.Server.TimeoutSecond)*time.Second)
	defer cancel()

	return h.processor.Process(ctx, req)
}

// classify maps a pipeline error to a status and a message for the user.
func (h *handler) classify(ctx context.Context, err error) (int, string) {
	switch {
	case errors.Is(err, input.ErrInputMissing):
		return http.StatusOK, infoInputMissing
	case errors.Is(err, input.ErrUnsupportedFile):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, input.ErrExtraction):
		h.logger.Warn(ctx, "Extraction failed: %v", err)
		return http.StatusUnprocessableEntity, err.Error()
	default:
		h.logger.Error(ctx, "Summarization failed: %v", err)
		return http.StatusBadGateway, "Summarization failed: " + err.Error()
	}
}

func (h *handler) jsonError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{
		Error:     msg,
		RequestID: logger.RequestID(c.Request.Context()),
	})
}
