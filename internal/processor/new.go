package processor

import (
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/studyflow/internal/config"
	"github.com/nguyentantai21042004/studyflow/internal/export"
	"github.com/nguyentantai21042004/studyflow/internal/extractor"
	"github.com/nguyentantai21042004/studyflow/internal/history"
	"github.com/nguyentantai21042004/studyflow/internal/logger"
	"github.com/nguyentantai21042004/studyflow/internal/metrics"
	"github.com/nguyentantai21042004/studyflow/internal/summarizer"
	"github.com/nguyentantai21042004/studyflow/internal/voice"
)

// Deps are the collaborators a Processor drives. Metrics may be nil.
type Deps struct {
	Extractor  extractor.Extractor
	Summarizer summarizer.Summarizer
	Voice      voice.Synthesizer
	History    history.Store
	Exporter   export.Exporter
	Metrics    metrics.Recorder
}

type implProcessor struct {
	cfg        *config.Config
	extractor  extractor.Extractor
	summarizer summarizer.Summarizer
	voice      voice.Synthesizer
	history    history.Store
	exporter   export.Exporter
	metrics    metrics.Recorder
	logger     logger.Logger

	now   func() time.Time
	newID func() string
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	rec := deps.Metrics
	if rec == nil {
		rec = metrics.Nop()
	}
	return &implProcessor{
		cfg:        cfg,
		extractor:  deps.Extractor,
		summarizer: deps.Summarizer,
		voice:      deps.Voice,
		history:    deps.History,
		exporter:   deps.Exporter,
		metrics:    rec,
		logger:     log,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}
