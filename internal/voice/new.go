package voice

import (
	"context"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	gapioption "google.golang.org/api/option"

	"github.com/nguyentantai21042004/studyflow/internal/logger"
	"github.com/nguyentantai21042004/studyflow/pkg/executor"
)

const capabilityName = "voice"

// Fixed voice policy. Every backend speaks US English.
const (
	LanguageCode = "en-US"
	VoiceName    = "en-US-Wavenet-D"

	// openaiVoice is the fixed speaker for the OpenAI backend.
	openaiVoice = "alloy"
)

// Options selects and configures a backend.
type Options struct {
	Provider        string
	Model           string
	APIKey          string
	BaseURL         string
	CredentialsFile string
	SpeechBinary    string
	FFmpegBinary    string
	TempDir         string
}

type synthesizeFunc func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error)

type googleSynthesizer struct {
	synthesize synthesizeFunc
	close      func() error
	logger     logger.Logger
}

type openaiSynthesizer struct {
	client openai.Client
	model  string
	logger logger.Logger
}

type commandSynthesizer struct {
	executor     executor.Executor
	speechBinary string
	ffmpegBinary string
	voice        string
	tempDir      string
	logger       logger.Logger
}

type unavailableSynthesizer struct{}

// New creates a Synthesizer for the configured provider. Missing credentials,
// missing binaries, or a client that cannot be built yield an unconfigured Synthesizer.
func New(ctx context.Context, opts Options, exec executor.Executor, log logger.Logger) Synthesizer {
	switch opts.Provider {
	case "google":
		if strings.TrimSpace(opts.CredentialsFile) == "" {
			log.Warn(ctx, "Google Cloud TTS has no credentials, voice notes disabled")
			return unavailableSynthesizer{}
		}
		s, err := newGoogle(ctx, opts, log)
		if err != nil {
			log.Warn(ctx, "Google Cloud TTS unavailable, voice notes disabled: %v", err)
			return unavailableSynthesizer{}
		}
		return s
	case "openai":
		if strings.TrimSpace(opts.APIKey) == "" {
			log.Warn(ctx, "OpenAI speech has no API key, voice notes disabled")
			return unavailableSynthesizer{}
		}
		return newOpenAI(opts, log)
	case "command":
		for _, bin := range []string{opts.SpeechBinary, opts.FFmpegBinary} {
			if !executor.LookPath(bin) {
				log.Warn(ctx, "%s not found on PATH, voice notes disabled", bin)
				return unavailableSynthesizer{}
			}
		}
		return newCommand(opts, exec, log)
	default:
		return unavailableSynthesizer{}
	}
}

func newGoogle(ctx context.Context, opts Options, log logger.Logger) (*googleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx, gapioption.WithCredentialsFile(opts.CredentialsFile))
	if err != nil {
		return nil, err
	}

	return &googleSynthesizer{
		synthesize: func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
			return client.SynthesizeSpeech(ctx, req)
		},
		close:  client.Close,
		logger: log,
	}, nil
}

func newOpenAI(opts Options, log logger.Logger) *openaiSynthesizer {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	model := opts.Model
	if model == "" {
		model = "tts-1"
	}

	return &openaiSynthesizer{
		client: openai.NewClient(reqOpts...),
		model:  model,
		logger: log,
	}
}

func newCommand(opts Options, exec executor.Executor, log logger.Logger) *commandSynthesizer {
	return &commandSynthesizer{
		executor:     exec,
		speechBinary: opts.SpeechBinary,
		ffmpegBinary: opts.FFmpegBinary,
		voice:        strings.ToLower(LanguageCode),
		tempDir:      opts.TempDir,
		logger:       log,
	}
}
