package processor

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/studyflow/internal/models"
)

// Truncation ceilings, in characters, applied before each stage.
const (
	SummaryInputLimit  = 4000
	VoiceInputLimit    = 1000
	VisualSourceLimit  = 500
	VisualExcerptLimit = 300
)

// ErrInput means there was no usable text. It is the only error that aborts a run.
var ErrInput = errors.New("no text content supplied")

// Processor runs the study content pipeline
type Processor interface {
	// Process runs the requested stages over text in a fixed order.
	Process(ctx context.Context, text string, req models.Request) (*models.Result, error)
	// ProcessSource extracts an uploaded file, or falls back to pasted text, then runs Process.
	ProcessSource(ctx context.Context, src models.Source, req models.Request) (*models.Result, error)
	// ProcessFile handles a document dropped into the input folder.
	ProcessFile(ctx context.Context, path string) error
}
