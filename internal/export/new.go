package export

import (
	"github.com/nguyentantai21042004/studyflow/internal/logger"
)

type implExporter struct {
	dir    string
	logger logger.Logger
}

// New creates an Exporter writing into dir
func New(dir string, log logger.Logger) Exporter {
	return &implExporter{dir: dir, logger: log}
}
