package extractor

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// Extract converts PDF or plain-text bytes into text
func (e *implExtractor) Extract(ctx context.Context, data []byte, mimeHint string) (string, error) {
	mediaType := normalizeMIME(mimeHint)
	if mediaType == "" {
		mediaType = DetectMIME(data)
		e.logger.Debug(ctx, "Detected content type: %s", mediaType)
	}

	switch mediaType {
	case MIMEPDF:
		return e.extractPDF(ctx, data)
	case MIMEPlainText, "text/markdown":
		return decodeText(data)
	default:
		return "", fmt.Errorf("%w: unsupported content type %q", ErrExtraction, mediaType)
	}
}

// decodeText returns data as UTF-8 text verbatim
func decodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: content is not valid UTF-8", ErrExtraction)
	}
	return string(data), nil
}

// normalizeMIME strips parameters such as charset from a media type
func normalizeMIME(hint string) string {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(hint)
	if err != nil {
		return strings.ToLower(hint)
	}
	return mediaType
}

// DetectMIME sniffs a media type, using stdlib detection first and
// the mimetype library when stdlib cannot decide
func DetectMIME(data []byte) string {
	if len(data) == 0 {
		return "application/octet-stream"
	}

	mt := http.DetectContentType(data)
	if mt == "application/octet-stream" {
		mt = mimetype.Detect(data).String()
	}
	return normalizeMIME(mt)
}

// MIMEFromFilename maps supported document extensions to media types
func MIMEFromFilename(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return MIMEPDF
	case ".txt":
		return MIMEPlainText
	case ".md", ".markdown":
		return "text/markdown"
	default:
		return ""
	}
}
