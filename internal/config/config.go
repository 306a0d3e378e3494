package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	LLM         LLMConfig         `yaml:"llm"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Prompts     PromptsConfig     `yaml:"prompts"`
	PDF         PDFConfig         `yaml:"pdf"`
	Inbox       InboxConfig       `yaml:"inbox"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	MaxUploadMB   int    `yaml:"max_upload_mb"`
	TimeoutSecond int    `yaml:"timeout_seconds"`
}

type LLMConfig struct {
	// Provider is one of groq, openai, gemini, anthropic.
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	// APIKeyEnv names the environment variable holding the credential.
	// Several comma separated keys are accepted for gemini.
	APIKeyEnv   string  `yaml:"api_key_env"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`

	// APIKeys is filled from the environment by Load, never from YAML.
	APIKeys []string `yaml:"-"`
}

type ChunkingConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

type PromptsConfig struct {
	Map       string `yaml:"map"`
	Reduce    string `yaml:"reduce"`
	Translate string `yaml:"translate"`
}

type PDFConfig struct {
	// Extractor is native or pdftotext.
	Extractor     string `yaml:"extractor"`
	PdftotextPath string `yaml:"pdftotext_path"`
}

type InboxConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Language string `yaml:"language"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"

	ExtractorNative    = "native"
	ExtractorPdftotext = "pdftotext"
)

var defaultModels = map[string]string{
	ProviderGroq:      "llama3-70b-8192",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderGemini:    "gemini-2.5-flash",
	ProviderAnthropic: "claude-sonnet-4-5-20250929",
}

var defaultKeyEnvs = map[string]string{
	ProviderGroq:      "GROQ_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderGemini:    "GEMINI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
}

func (c *Config) Validate() error {
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderGroq
	}
	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	model, ok := defaultModels[c.LLM.Provider]
	if !ok {
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		c.LLM.Model = model
	}
	if c.LLM.APIKeyEnv == "" {
		c.LLM.APIKeyEnv = defaultKeyEnvs[c.LLM.Provider]
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 2048
	}
	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("llm.max_tokens must be positive")
	}

	if c.Chunking.Size == 0 {
		c.Chunking.Size = 2000
	}
	if c.Chunking.Overlap == 0 {
		c.Chunking.Overlap = 100
	}
	if c.Chunking.Size < 0 || c.Chunking.Overlap < 0 {
		return fmt.Errorf("chunking.size and chunking.overlap cannot be negative")
	}
	if c.Chunking.Overlap >= c.Chunking.Size {
		return fmt.Errorf("chunking.overlap (%d) must be smaller than chunking.size (%d)",
			c.Chunking.Overlap, c.Chunking.Size)
	}

	if c.Prompts.Map == "" {
		c.Prompts.Map = DefaultMapPrompt
	}
	if c.Prompts.Reduce == "" {
		c.Prompts.Reduce = DefaultReducePrompt
	}
	if c.Prompts.Translate == "" {
		c.Prompts.Translate = DefaultTranslatePrompt
	}

	if c.PDF.Extractor == "" {
		c.PDF.Extractor = ExtractorNative
	}
	switch c.PDF.Extractor {
	case ExtractorNative:
	case ExtractorPdftotext:
		if c.PDF.PdftotextPath == "" {
			c.PDF.PdftotextPath = "pdftotext"
		}
	default:
		return fmt.Errorf("pdf.extractor %q is not supported", c.PDF.Extractor)
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 20
	}
	if c.Server.TimeoutSecond == 0 {
		c.Server.TimeoutSecond = 300
	}

	if c.Inbox.Input == "" {
		c.Inbox.Input = "data/inbox"
	}
	if c.Inbox.Output == "" {
		c.Inbox.Output = "data/summaries"
	}
	if c.Inbox.Archived == "" {
		c.Inbox.Archived = "data/archived"
	}
	if c.Inbox.Language == "" {
		c.Inbox.Language = "English"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 4
	}

	return nil
}
