package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/studyflow/internal/models"
)

type Config struct {
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Voice       VoiceConfig       `yaml:"voice"`
	Paths       PathsConfig       `yaml:"paths"`
	Defaults    DefaultsConfig    `yaml:"defaults"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Server      ServerConfig      `yaml:"server"`
	Secrets     Secrets           `yaml:"-"`
}

// SummarizerConfig selects the language model backend. An empty provider disables summaries.
type SummarizerConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

// VoiceConfig selects the speech backend. An empty provider disables voice notes.
type VoiceConfig struct {
	Provider     string `yaml:"provider"`
	Model        string `yaml:"model"`
	BaseURL      string `yaml:"base_url"`
	SpeechBinary string `yaml:"speech_binary"`
	FFmpegBinary string `yaml:"ffmpeg_binary"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

// DefaultsConfig is the request used when the caller supplies none (watch mode).
type DefaultsConfig struct {
	Level   string   `yaml:"level"`
	Formats []string `yaml:"formats"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ServerConfig struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

// Secrets are read from the environment, never from the YAML file.
type Secrets struct {
	OpenAIAPIKey      string
	GeminiAPIKey      string
	GoogleCredentials string
}

const (
	ProviderOpenAI  = "openai"
	ProviderGemini  = "gemini"
	ProviderGoogle  = "google"
	ProviderCommand = "command"
)

// Load reads the YAML config at path, then secrets from .env and the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg.Secrets = SecretsFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv populates the environment from path without overriding set variables.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// SecretsFromEnv collects API credentials from environment variables.
func SecretsFromEnv() Secrets {
	return Secrets{
		OpenAIAPIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GoogleCredentials: strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),
	}
}

func (c *Config) Validate() error {
	c.Summarizer.Provider = strings.ToLower(strings.TrimSpace(c.Summarizer.Provider))
	switch c.Summarizer.Provider {
	case "", ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("summarizer.provider %q is not supported", c.Summarizer.Provider)
	}

	c.Voice.Provider = strings.ToLower(strings.TrimSpace(c.Voice.Provider))
	switch c.Voice.Provider {
	case "", ProviderGoogle, ProviderOpenAI, ProviderCommand:
	default:
		return fmt.Errorf("voice.provider %q is not supported", c.Voice.Provider)
	}

	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Defaults.Level == "" {
		c.Defaults.Level = string(models.LevelBeginner)
	}
	if _, err := models.ParseLevel(c.Defaults.Level); err != nil {
		return fmt.Errorf("defaults.level: %w", err)
	}
	if len(c.Defaults.Formats) == 0 {
		c.Defaults.Formats = []string{string(models.FormatSummary)}
	}
	if _, err := models.ParseFormats(c.Defaults.Formats); err != nil {
		return fmt.Errorf("defaults.formats: %w", err)
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadBytes == 0 {
		c.Server.MaxUploadBytes = 20 << 20
	}
	if c.Summarizer.Model == "" {
		switch c.Summarizer.Provider {
		case ProviderOpenAI:
			c.Summarizer.Model = "gpt-4"
		case ProviderGemini:
			c.Summarizer.Model = "gemini-2.5-flash"
		}
	}
	if c.Voice.Model == "" {
		c.Voice.Model = "tts-1"
	}
	if c.Voice.SpeechBinary == "" {
		c.Voice.SpeechBinary = "espeak-ng"
	}
	if c.Voice.FFmpegBinary == "" {
		c.Voice.FFmpegBinary = "ffmpeg"
	}

	return nil
}

// DefaultRequest builds the request used when the caller supplies none.
func (c *Config) DefaultRequest() (models.Request, error) {
	level, err := models.ParseLevel(c.Defaults.Level)
	if err != nil {
		return models.Request{}, err
	}
	formats, err := models.ParseFormats(c.Defaults.Formats)
	if err != nil {
		return models.Request{}, err
	}
	return models.Request{Level: level, Formats: formats}, nil
}
