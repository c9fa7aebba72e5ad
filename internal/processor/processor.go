package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/studyflow/internal/capability"
	"github.com/nguyentantai21042004/studyflow/internal/models"
	"github.com/nguyentantai21042004/studyflow/internal/stats"
	"github.com/nguyentantai21042004/studyflow/internal/visual"
	"github.com/nguyentantai21042004/studyflow/pkg/textutil"
)

// Process orchestrates the summary, voice note and visual stages
func (p *implProcessor) Process(ctx context.Context, text string, req models.Request) (*models.Result, error) {
	if textutil.IsBlank(text) {
		p.metrics.RunCompleted(0, ErrInput)
		return nil, ErrInput
	}

	startTime := p.now()
	result := &models.Result{Document: models.NewDocument(text)}

	p.logger.Info(ctx, "Processing %d characters at %s level, formats %v", result.Document.Length, req.Level, req.Formats)

	// Step 1: Summarize the head of the document
	if req.Wants(models.FormatSummary) {
		summary, err := p.summarizer.Summarize(ctx, textutil.Truncate(text, SummaryInputLimit), req.Level)
		if err == nil {
			result.Artifacts.Summary = summary
		}
		p.report(ctx, result, models.FormatSummary, err)
	}

	// Step 2: Voice note reads the summary when there is one
	if req.Wants(models.FormatVoiceNote) {
		source := p.stageSource(result, text, VoiceInputLimit)
		audio, err := p.voice.Synthesize(ctx, textutil.Truncate(source, VoiceInputLimit))
		if err == nil {
			result.Artifacts.Audio = audio
		}
		p.report(ctx, result, models.FormatVoiceNote, err)
	}

	// Step 3: Visual prompt, always available
	if req.Wants(models.FormatVisualExplanation) {
		source := p.stageSource(result, text, VisualSourceLimit)
		result.Artifacts.Visual = visual.BuildPrompt(textutil.Truncate(source, VisualExcerptLimit))
		p.report(ctx, result, models.FormatVisualExplanation, nil)
	}

	// Step 4: Statistics and history
	result.Stats = stats.Compute(text, result.Artifacts)
	finishedAt := p.now()
	p.history.Record(models.HistoryEntry{
		ID:             p.newID(),
		Timestamp:      finishedAt,
		OriginalLength: result.Document.Length,
		Summary:        result.Artifacts.Summary,
		HasAudio:       result.Artifacts.HasAudio(),
		HasVisual:      result.Artifacts.HasVisual(),
	})

	result.Duration = finishedAt.Sub(startTime)
	p.metrics.RunCompleted(result.Duration, nil)
	p.logger.Info(ctx, "Processing completed in %s: summary %d chars, compression %.1f%%",
		result.Duration, result.Stats.SummaryLength, result.Stats.CompressionRatio)

	return result, nil
}

// stageSource prefers the summary over a prefix of the original text
func (p *implProcessor) stageSource(result *models.Result, original string, limit int) string {
	if result.Artifacts.HasSummary() {
		return result.Artifacts.Summary
	}
	return textutil.Truncate(original, limit)
}

func (p *implProcessor) report(ctx context.Context, result *models.Result, format models.Format, err error) {
	stage := models.StageReport{Format: format, Status: capability.Status(err)}

	switch stage.Status {
	case models.StageOK:
		p.logger.Info(ctx, "Stage %s done", format)
	case models.StageUnavailable:
		p.logger.Debug(ctx, "Stage %s skipped: %v", format, err)
	default:
		stage.Error = err.Error()
		p.logger.Warn(ctx, "Stage %s failed: %v", format, err)
	}

	result.Stages = append(result.Stages, stage)
	p.metrics.StageCompleted(format, stage.Status)
}

// ProcessSource resolves caller input. An uploaded file wins over pasted text.
func (p *implProcessor) ProcessSource(ctx context.Context, src models.Source, req models.Request) (*models.Result, error) {
	if !src.HasFile() {
		return p.Process(ctx, src.Text, req)
	}

	text, err := p.extractor.Extract(ctx, src.Data, src.MIMEHint)
	if err != nil {
		p.logger.Warn(ctx, "Failed to extract %s: %v", src.Filename, err)
		err = fmt.Errorf("%w: %w", ErrInput, err)
		p.metrics.RunCompleted(0, err)
		return nil, err
	}

	p.logger.Debug(ctx, "Extracted %d characters from %s", textutil.Len(text), src.Filename)
	return p.Process(ctx, text, req)
}
