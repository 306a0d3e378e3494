// Package web serves the browser UI and a small JSON API over the
// summarization pipeline.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/processor"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewRouter wires routes and middleware for the given processor.
func NewRouter(cfg *config.Config, proc processor.Processor, log logger.Logger) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	h := &handler{
		cfg:       cfg,
		processor: proc,
		logger:    log,
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(log))
	r.SetHTMLTemplate(tmpl)
	maxBody := int64(cfg.Server.MaxUploadMB) << 20
	r.MaxMultipartMemory = maxBody

	r.GET("/", h.index)
	r.POST("/summarize", limitBody(maxBody), h.summarize)
	r.POST("/export/docx", limitBody(maxBody), h.exportDOCX)

	api := r.Group("/api")
	{
		api.POST("/summarize", limitBody(maxBody), h.summarizeJSON)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r, nil
}
