package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/speech-digest/internal/app"
	"github.com/nguyentantai21042004/speech-digest/internal/export"
	"github.com/nguyentantai21042004/speech-digest/internal/input"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/processor"
	"github.com/nguyentantai21042004/speech-digest/internal/translator"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to the YAML config")
		file       = flag.String("file", "", "speech file (.txt or .pdf); reads stdin when empty")
		lang       = flag.String("lang", "English", "summary language: English, Hindi, French, German, Spanish")
		docxPath   = flag.String("docx", "", "also write the summary to this .docx file")
		mdPath     = flag.String("md", "", "also write the summary to this Markdown file")
	)
	flag.Parse()

	if err := run(*configPath, *file, *lang, *docxPath, *mdPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, input.ErrInputMissing) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(configPath, file, langName, docxPath, mdPath string) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}
	// keep stdout for the summary
	log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	lang, err := translator.ParseLanguage(langName)
	if err != nil {
		return err
	}

	src, title, err := readSource(file)
	if err != nil {
		return err
	}

	proc, err := app.NewProcessor(ctx, cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.TimeoutSecond)*time.Second)
	defer cancel()

	res, err := proc.Process(ctx, processor.Request{Source: src, Language: lang})
	if err != nil {
		return err
	}

	fmt.Println(res.Summary)

	if mdPath != "" {
		md := export.Markdown(title, res.Summary, time.Now())
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			return fmt.Errorf("write %s: %w", mdPath, err)
		}
	}
	if docxPath != "" {
		if err := export.WriteDOCX(title, res.Summary, docxPath); err != nil {
			return err
		}
	}
	return nil
}

func readSource(file string) (input.Source, string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return input.Source{}, "", fmt.Errorf("read stdin: %w", err)
		}
		return input.Source{Text: input.DecodeText(data)}, "Speech Summary", nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return input.Source{}, "", fmt.Errorf("read %s: %w", file, err)
	}
	name := filepath.Base(file)
	return input.Source{File: &input.Upload{Name: name, Data: data}},
		strings.TrimSuffix(name, filepath.Ext(name)), nil
}
