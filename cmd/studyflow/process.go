package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/studyflow/internal/extractor"
	"github.com/nguyentantai21042004/studyflow/internal/metrics"
	"github.com/nguyentantai21042004/studyflow/internal/models"
)

func newProcessCommand(root *rootOptions) *cobra.Command {
	var (
		file    string
		text    string
		level   string
		formats []string
	)
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Process one document or pasted text and write the downloads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, root, metrics.Nop())
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			req, err := a.cfg.DefaultRequest()
			if err != nil {
				return err
			}
			if level != "" {
				if req.Level, err = models.ParseLevel(level); err != nil {
					return err
				}
			}
			if len(formats) > 0 {
				if req.Formats, err = models.ParseFormats(formats); err != nil {
					return err
				}
			}

			src := models.Source{Text: text}
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
				src.Filename = filepath.Base(file)
				src.MIMEHint = extractor.MIMEFromFilename(file)
				src.Data = data
			}

			result, err := a.processor.ProcessSource(ctx, src, req)
			if err != nil {
				return err
			}
			names, err := a.exporter.Export(ctx, result, time.Now())
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), result, names)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "PDF, text or markdown document")
	cmd.Flags().StringVar(&text, "text", "", "pasted text, used when --file is not given")
	cmd.Flags().StringVar(&level, "level", "", "beginner, intermediate or advanced")
	cmd.Flags().StringSliceVar(&formats, "format", nil, "summary, voice_note, visual_explanation (repeatable)")
	return cmd
}

func printResult(w io.Writer, result *models.Result, downloads []string) {
	if result.Artifacts.HasSummary() {
		fmt.Fprintf(w, "Simplified Summary\n\n%s\n\n", result.Artifacts.Summary)
	}
	if result.Artifacts.HasVisual() {
		fmt.Fprintf(w, "Visual Explanation\n\n%s\n\n", result.Artifacts.Visual)
	}
	for _, stage := range result.Stages {
		if stage.Status != models.StageOK {
			fmt.Fprintf(w, "%s: %s %s\n", stage.Format, stage.Status, stage.Error)
		}
	}
	fmt.Fprintf(w, "Original length: %d characters\n", result.Stats.OriginalLength)
	fmt.Fprintf(w, "Summary length: %d characters\n", result.Stats.SummaryLength)
	fmt.Fprintf(w, "Compression: %.1f%%\n", result.Stats.CompressionRatio)
	for _, name := range downloads {
		fmt.Fprintf(w, "Saved %s\n", name)
	}
}
