package voice

import "context"

// Synthesizer turns text into MP3 audio.
type Synthesizer interface {
	IsConfigured() bool
	// Synthesize returns capability.ErrUnavailable when no backend is configured
	// and a *capability.Error when the configured backend fails.
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Close() error
}
