package summarizer

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/studyflow/internal/logger"
)

const capabilityName = "summarizer"

// Options selects and configures a backend.
type Options struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

type geminiSummarizer struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

type openaiSummarizer struct {
	client openai.Client
	model  string
	logger logger.Logger
}

type unavailableSummarizer struct{}

// New creates a Summarizer for the configured provider. A missing provider or
// API key, or a client that cannot be built, yields an unconfigured Summarizer.
func New(ctx context.Context, opts Options, log logger.Logger) Summarizer {
	if strings.TrimSpace(opts.APIKey) == "" {
		if opts.Provider != "" {
			log.Warn(ctx, "Summarizer %s has no API key, summaries disabled", opts.Provider)
		}
		return unavailableSummarizer{}
	}

	switch opts.Provider {
	case "openai":
		return newOpenAI(opts, log)
	case "gemini":
		s, err := newGemini(ctx, opts, log)
		if err != nil {
			log.Warn(ctx, "Gemini client unavailable, summaries disabled: %v", err)
			return unavailableSummarizer{}
		}
		return s
	default:
		return unavailableSummarizer{}
	}
}

func newOpenAI(opts Options, log logger.Logger) *openaiSummarizer {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	model := opts.Model
	if model == "" {
		model = "gpt-4"
	}

	return &openaiSummarizer{
		client: openai.NewClient(reqOpts...),
		model:  model,
		logger: log,
	}
}

func newGemini(ctx context.Context, opts Options, log logger.Logger) (*geminiSummarizer, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, err
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &geminiSummarizer{
		client: client,
		model:  model,
		logger: log,
	}, nil
}
