package extractor

import (
	"context"
	"errors"
)

const (
	MIMEPDF       = "application/pdf"
	MIMEPlainText = "text/plain"
)

// ErrExtraction is returned for malformed or undecodable documents.
var ErrExtraction = errors.New("extraction failed")

// Extractor converts raw uploaded content into a single text blob
type Extractor interface {
	// Extract decodes data according to mimeHint. An empty hint sniffs the content.
	Extract(ctx context.Context, data []byte, mimeHint string) (string, error)
}
