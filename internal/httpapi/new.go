package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nguyentantai21042004/studyflow/internal/export"
	"github.com/nguyentantai21042004/studyflow/internal/history"
	"github.com/nguyentantai21042004/studyflow/internal/logger"
	"github.com/nguyentantai21042004/studyflow/internal/models"
	"github.com/nguyentantai21042004/studyflow/internal/processor"
	"github.com/nguyentantai21042004/studyflow/internal/summarizer"
	"github.com/nguyentantai21042004/studyflow/internal/voice"
)

type Options struct {
	Addr           string
	MaxUploadBytes int64
	// DefaultRequest fills in level and formats the form leaves out.
	DefaultRequest models.Request
}

type Deps struct {
	Processor  processor.Processor
	History    history.Store
	Exporter   export.Exporter
	Summarizer summarizer.Summarizer
	Voice      voice.Synthesizer
	Gatherer   prometheus.Gatherer
}

type implServer struct {
	opts       Options
	processor  processor.Processor
	history    history.Store
	exporter   export.Exporter
	summarizer summarizer.Summarizer
	voice      voice.Synthesizer
	gatherer   prometheus.Gatherer
	logger     logger.Logger
	sem        *semaphore
	router     *gin.Engine
	now        func() time.Time
}

// New creates a Server allowing one pipeline run at a time
func New(opts Options, deps Deps, log logger.Logger) Server {
	s := &implServer{
		opts:       opts,
		processor:  deps.Processor,
		history:    deps.History,
		exporter:   deps.Exporter,
		summarizer: deps.Summarizer,
		voice:      deps.Voice,
		gatherer:   deps.Gatherer,
		logger:     log,
		sem:        newSemaphore(1),
		now:        time.Now,
	}
	s.router = s.routes()
	return s
}
