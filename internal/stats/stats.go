// Package stats derives length and compression metrics for a run.
package stats

import (
	"github.com/nguyentantai21042004/studyflow/internal/models"
	"github.com/nguyentantai21042004/studyflow/pkg/textutil"
)

// Compute measures the original text and the summary in characters.
// The ratio is summary/original*100 when a summary exists, otherwise 0.
func Compute(original string, artifacts models.Artifacts) models.Statistics {
	st := models.Statistics{OriginalLength: textutil.Len(original)}
	if !artifacts.HasSummary() {
		return st
	}

	st.SummaryLength = textutil.Len(artifacts.Summary)
	if st.OriginalLength > 0 {
		st.CompressionRatio = float64(st.SummaryLength) / float64(st.OriginalLength) * 100
	}
	return st
}
