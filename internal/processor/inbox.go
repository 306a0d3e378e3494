package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/speech-digest/internal/export"
	"github.com/nguyentantai21042004/speech-digest/internal/input"
	"github.com/nguyentantai21042004/speech-digest/internal/translator"
)

// ProcessFile summarizes an inbox file into <name>.md and <name>.docx in
// the output folder, then moves the source to the archived folder.
func (p *implProcessor) ProcessFile(ctx context.Context, path string) error {
	filename := filepath.Base(path)
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting speech processing: %s", path)
	p.logger.Info(ctx, "========================================")

	lang, err := translator.ParseLanguage(p.cfg.Inbox.Language)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	result, err := p.Process(ctx, Request{
		Source:   input.Source{File: &input.Upload{Name: filename, Data: data}},
		Language: lang,
	})
	if err != nil {
		return fmt.Errorf("process %s: %w", filename, err)
	}

	if err := os.MkdirAll(p.cfg.Inbox.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	mdPath := filepath.Join(p.cfg.Inbox.Output, name+".md")
	md := export.Markdown(name, result.Summary, time.Now())
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write %s: %w", mdPath, err)
	}

	docxPath := filepath.Join(p.cfg.Inbox.Output, name+".docx")
	if err := export.WriteDOCX(name, result.Summary, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "[DONE] %s -> %s", filename, mdPath)
	return nil
}

// moveToArchived moves a processed source out of the inbox so it is not
// picked up again.
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Inbox.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Inbox.Archived, filepath.Base(path))
	p.logger.Info(ctx, "Archiving: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
