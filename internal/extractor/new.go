package extractor

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/nguyentantai21042004/studyflow/internal/logger"
)

func init() {
	// pdfcpu would otherwise create a config directory under the user's home
	api.DisableConfigDir()
}

type implExtractor struct {
	logger logger.Logger
}

// New creates a new Extractor instance
func New(log logger.Logger) Extractor {
	return &implExtractor{logger: log}
}
