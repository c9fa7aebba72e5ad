package httpapi

import (
	"context"
	"net/http"
)

// InputErrorMessage is shown when a request carries no usable text.
const InputErrorMessage = "Please upload a file or paste some text content."

// Server exposes the pipeline over HTTP
type Server interface {
	Handler() http.Handler
	// Run serves until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error
}
