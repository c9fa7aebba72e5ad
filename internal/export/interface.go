package export

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/studyflow/internal/models"
)

// TimestampLayout renders as YYYYMMDD_HHMMSS.
const TimestampLayout = "20060102_150405"

// File name prefixes of the downloadable artifacts.
const (
	PrefixSummary = "summary"
	PrefixVoice   = "voice_note"
	PrefixVisual  = "visual_prompt"
)

// Exporter writes the downloadable artifacts of a run.
type Exporter interface {
	// Export writes every present artifact stamped with at and returns the file names written.
	Export(ctx context.Context, result *models.Result, at time.Time) ([]string, error)
	// Path resolves a file name previously returned by Export.
	Path(name string) (string, error)
}
