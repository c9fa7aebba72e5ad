// Package metrics counts pipeline stage outcomes and run durations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nguyentantai21042004/studyflow/internal/models"
)

// Recorder observes pipeline activity.
type Recorder interface {
	StageCompleted(format models.Format, status models.StageStatus)
	RunCompleted(duration time.Duration, err error)
}

type promRecorder struct {
	stages   *prometheus.CounterVec
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewPrometheus registers the pipeline collectors on reg.
func NewPrometheus(reg prometheus.Registerer) Recorder {
	r := &promRecorder{
		stages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studyflow",
			Name:      "stage_total",
			Help:      "Pipeline stages by output format and outcome.",
		}, []string{"format", "status"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studyflow",
			Name:      "runs_total",
			Help:      "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "studyflow",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of completed pipeline runs.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}),
	}
	reg.MustRegister(r.stages, r.runs, r.duration)
	return r
}

func (r *promRecorder) StageCompleted(format models.Format, status models.StageStatus) {
	r.stages.WithLabelValues(string(format), string(status)).Inc()
}

func (r *promRecorder) RunCompleted(duration time.Duration, err error) {
	if err != nil {
		r.runs.WithLabelValues("rejected").Inc()
		return
	}
	r.runs.WithLabelValues("completed").Inc()
	r.duration.Observe(duration.Seconds())
}

type nopRecorder struct{}

// Nop returns a Recorder that drops observations.
func Nop() Recorder { return nopRecorder{} }

func (nopRecorder) StageCompleted(models.Format, models.StageStatus) {}
func (nopRecorder) RunCompleted(time.Duration, error)                {}
