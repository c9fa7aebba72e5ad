package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/nguyentantai21042004/studyflow/internal/config"
	"github.com/nguyentantai21042004/studyflow/internal/export"
	"github.com/nguyentantai21042004/studyflow/internal/extractor"
	"github.com/nguyentantai21042004/studyflow/internal/history"
	"github.com/nguyentantai21042004/studyflow/internal/logger"
	"github.com/nguyentantai21042004/studyflow/internal/metrics"
	"github.com/nguyentantai21042004/studyflow/internal/processor"
	"github.com/nguyentantai21042004/studyflow/internal/summarizer"
	"github.com/nguyentantai21042004/studyflow/internal/voice"
	"github.com/nguyentantai21042004/studyflow/pkg/executor"
)

// app holds the process-wide capability clients, built once and shared read-only.
type app struct {
	cfg        *config.Config
	log        logger.Logger
	summarizer summarizer.Summarizer
	voice      voice.Synthesizer
	history    history.Store
	exporter   export.Exporter
	processor  processor.Processor
}

func newApp(ctx context.Context, opts *rootOptions, rec metrics.Recorder) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	log.Debug(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	sum := summarizer.New(ctx, summarizer.Options{
		Provider: cfg.Summarizer.Provider,
		Model:    cfg.Summarizer.Model,
		APIKey:   summarizerKey(cfg),
		BaseURL:  cfg.Summarizer.BaseURL,
	}, log)

	synth := voice.New(ctx, voice.Options{
		Provider:        cfg.Voice.Provider,
		Model:           cfg.Voice.Model,
		APIKey:          cfg.Secrets.OpenAIAPIKey,
		BaseURL:         cfg.Voice.BaseURL,
		CredentialsFile: cfg.Secrets.GoogleCredentials,
		SpeechBinary:    cfg.Voice.SpeechBinary,
		FFmpegBinary:    cfg.Voice.FFmpegBinary,
		TempDir:         cfg.Paths.Temp,
	}, executor.New(), log)

	log.Info(ctx, "Summarizer configured: %t, voice configured: %t", sum.IsConfigured(), synth.IsConfigured())

	a := &app{
		cfg:        cfg,
		log:        log,
		summarizer: sum,
		voice:      synth,
		history:    history.New(),
		exporter:   export.New(cfg.Paths.Output, log),
	}
	a.processor = processor.New(cfg, processor.Deps{
		Extractor:  extractor.New(log),
		Summarizer: a.summarizer,
		Voice:      a.voice,
		History:    a.history,
		Exporter:   a.exporter,
		Metrics:    rec,
	}, log)
	return a, nil
}

func (a *app) Close(ctx context.Context) {
	if err := a.voice.Close(); err != nil {
		a.log.Warn(ctx, "Failed to close voice client: %v", err)
	}
}

func summarizerKey(cfg *config.Config) string {
	switch cfg.Summarizer.Provider {
	case config.ProviderOpenAI:
		return cfg.Secrets.OpenAIAPIKey
	case config.ProviderGemini:
		return cfg.Secrets.GeminiAPIKey
	default:
		return ""
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
