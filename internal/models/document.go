package models

import (
	"time"

	"github.com/nguyentantai21042004/studyflow/pkg/textutil"
)

// Document is the extracted text of one request.
type Document struct {
	Text   string `json:"-"`
	Length int    `json:"length"`
}

// NewDocument measures text in characters.
func NewDocument(text string) Document {
	return Document{Text: text, Length: textutil.Len(text)}
}

// Artifacts holds the outputs of one run. An empty field means the artifact is absent.
type Artifacts struct {
	Summary string
	Audio   []byte
	Visual  string
}

func (a Artifacts) HasSummary() bool { return a.Summary != "" }
func (a Artifacts) HasAudio() bool   { return len(a.Audio) > 0 }
func (a Artifacts) HasVisual() bool  { return a.Visual != "" }

// StageStatus is the outcome of one requested stage.
type StageStatus string

const (
	StageOK          StageStatus = "ok"
	StageUnavailable StageStatus = "unavailable"
	StageFailed      StageStatus = "failed"
)

type StageReport struct {
	Format Format      `json:"format"`
	Status StageStatus `json:"status"`
	Error  string      `json:"error,omitempty"`
}

type Statistics struct {
	OriginalLength   int     `json:"original_length"`
	SummaryLength    int     `json:"summary_length"`
	CompressionRatio float64 `json:"compression_ratio"`
}

// Result is everything one pipeline run produced.
type Result struct {
	Document  Document
	Artifacts Artifacts
	Stages    []StageReport
	Stats     Statistics
	Duration  time.Duration
}

// Stage returns the report for f, if f was requested.
func (r *Result) Stage(f Format) (StageReport, bool) {
	for _, s := range r.Stages {
		if s.Format == f {
			return s, true
		}
	}
	return StageReport{}, false
}

// HistoryEntry is the retained metadata of one past run.
type HistoryEntry struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	OriginalLength int       `json:"original_length"`
	Summary        string    `json:"summary"`
	HasAudio       bool      `json:"has_audio"`
	HasVisual      bool      `json:"has_visual"`
}
