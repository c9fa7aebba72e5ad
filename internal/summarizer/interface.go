package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/studyflow/internal/models"
)

// Summarizer turns a text chunk into a simplified summary for a complexity level.
type Summarizer interface {
	IsConfigured() bool
	// Summarize returns capability.ErrUnavailable when no backend is configured
	// and a *capability.Error when the configured backend fails.
	Summarize(ctx context.Context, chunk string, level models.Level) (string, error)
}
