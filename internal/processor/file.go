package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/studyflow/internal/extractor"
	"github.com/nguyentantai21042004/studyflow/internal/models"
)

// ProcessFile runs the default request over a document and writes its downloads
func (p *implProcessor) ProcessFile(ctx context.Context, path string) error {
	filename := filepath.Base(path)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting document processing: %s", path)
	p.logger.Info(ctx, "========================================")

	req, err := p.cfg.DefaultRequest()
	if err != nil {
		return fmt.Errorf("default request: %w", err)
	}

	// Step 1: Read the document
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	// Step 2: Run the pipeline
	result, err := p.ProcessSource(ctx, models.Source{
		Filename: filename,
		MIMEHint: extractor.MIMEFromFilename(filename),
		Data:     data,
	}, req)
	if err != nil {
		return fmt.Errorf("process %s: %w", filename, err)
	}

	// Step 3: Write downloads
	names, err := p.exporter.Export(ctx, result, p.now())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	// Step 4: Move original document to archived folder
	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	for _, name := range names {
		p.logger.Info(ctx, "Output: %s", filepath.Join(p.cfg.Paths.Output, name))
	}
	p.logger.Info(ctx, "Processing time: %s", result.Duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// moveToArchived moves a processed document out of the input folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
