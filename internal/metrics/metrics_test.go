package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/nguyentantai21042004/studyflow/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewPrometheus(reg).(*promRecorder)

	rec.StageCompleted(models.FormatSummary, models.StageOK)
	rec.StageCompleted(models.FormatSummary, models.StageOK)
	rec.StageCompleted(models.FormatVoiceNote, models.StageUnavailable)
	rec.RunCompleted(1500*time.Millisecond, nil)
	rec.RunCompleted(0, errors.New("no input"))

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.stages.WithLabelValues("summary", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.stages.WithLabelValues("voice_note", "unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.runs.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.runs.WithLabelValues("rejected")))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.duration))
}

func TestNop(t *testing.T) {
	rec := Nop()
	rec.StageCompleted(models.FormatVisualExplanation, models.StageOK)
	rec.RunCompleted(time.Second, nil)
}
