package httpapi

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/studyflow/internal/extractor"
	"github.com/nguyentantai21042004/studyflow/internal/models"
	"github.com/nguyentantai21042004/studyflow/internal/processor"
)

type processResponse struct {
	Summary    string               `json:"summary,omitempty"`
	Audio      string               `json:"audio,omitempty"`
	Visual     string               `json:"visual_prompt,omitempty"`
	Statistics models.Statistics    `json:"statistics"`
	Stages     []models.StageReport `json:"stages"`
	Downloads  []string             `json:"downloads"`
	DurationMS int64                `json:"duration_ms"`
}

func newProcessResponse(result *models.Result, downloads []string) processResponse {
	resp := processResponse{
		Summary:    result.Artifacts.Summary,
		Visual:     result.Artifacts.Visual,
		Statistics: result.Stats,
		Stages:     result.Stages,
		Downloads:  downloads,
		DurationMS: result.Duration.Milliseconds(),
	}
	if result.Artifacts.HasAudio() {
		resp.Audio = base64.StdEncoding.EncodeToString(result.Artifacts.Audio)
	}
	if resp.Downloads == nil {
		resp.Downloads = []string{}
	}
	return resp
}

func (s *implServer) process(c *gin.Context) {
	ctx := c.Request.Context()
	if s.opts.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.MaxUploadBytes)
	}

	req, err := s.parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	src, err := readSource(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.sem.acquire(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled while waiting for a running job"})
		return
	}
	defer s.sem.release()

	result, err := s.processor.ProcessSource(ctx, src, req)
	if errors.Is(err, processor.ErrInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": InputErrorMessage})
		return
	}
	if err != nil {
		s.logger.Error(ctx, "Processing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "processing failed"})
		return
	}

	downloads, err := s.exporter.Export(ctx, result, s.now())
	if err != nil {
		s.logger.Warn(ctx, "Failed to write downloads: %v", err)
	}

	c.JSON(http.StatusOK, newProcessResponse(result, downloads))
}

// parseRequest reads level and formats, falling back to the configured defaults
func (s *implServer) parseRequest(c *gin.Context) (models.Request, error) {
	req := s.opts.DefaultRequest

	if raw := c.PostForm("level"); raw != "" {
		level, err := models.ParseLevel(raw)
		if err != nil {
			return req, err
		}
		req.Level = level
	}

	formats, err := models.ParseFormats(c.PostFormArray("formats"))
	if err != nil {
		return req, err
	}
	if len(formats) > 0 {
		req.Formats = formats
	}
	return req, nil
}

func readSource(c *gin.Context) (models.Source, error) {
	src := models.Source{Text: c.PostForm("text")}

	fh, err := c.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return src, nil
	case err != nil:
		return src, fmt.Errorf("read upload: %w", err)
	}

	f, err := fh.Open()
	if err != nil {
		return src, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return src, fmt.Errorf("read upload: %w", err)
	}

	src.Filename = fh.Filename
	src.Data = data
	src.MIMEHint = extractor.MIMEFromFilename(fh.Filename)
	if ct := fh.Header.Get("Content-Type"); src.MIMEHint == "" && ct != "application/octet-stream" {
		src.MIMEHint = ct
	}
	return src, nil
}

func (s *implServer) listHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": s.history.List()})
}

func (s *implServer) status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"summarizer": s.summarizer.IsConfigured(),
		"voice":      s.voice.IsConfigured(),
		"visual":     true,
	})
}

func (s *implServer) download(c *gin.Context) {
	name := c.Param("name")
	path, err := s.exporter.Path(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	c.FileAttachment(path, name)
}
