package voice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/nguyentantai21042004/studyflow/internal/capability"
	"github.com/nguyentantai21042004/studyflow/internal/logger"
	"github.com/nguyentantai21042004/studyflow/pkg/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnconfigured(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no provider", Options{}},
		{"google without credentials", Options{Provider: "google"}},
		{"openai without key", Options{Provider: "openai"}},
		{"command without binaries", Options{Provider: "command", SpeechBinary: "no-such-speech-bin", FFmpegBinary: "no-such-ffmpeg"}},
		{"unknown provider", Options{Provider: "polly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(context.Background(), tt.opts, executor.New(), logger.NewNop())
			assert.False(t, s.IsConfigured())

			audio, err := s.Synthesize(context.Background(), "hello")
			assert.Nil(t, audio)
			assert.ErrorIs(t, err, capability.ErrUnavailable)
			assert.NoError(t, s.Close())
		})
	}
}

func TestGoogleSynthesize(t *testing.T) {
	var captured *texttospeechpb.SynthesizeSpeechRequest
	s := &googleSynthesizer{
		synthesize: func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
			captured = req
			return &texttospeechpb.SynthesizeSpeechResponse{AudioContent: []byte("ID3-mp3")}, nil
		},
		logger: logger.NewNop(),
	}

	audio, err := s.Synthesize(context.Background(), "Plants make food from light.")
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-mp3"), audio)

	require.NotNil(t, captured)
	assert.Equal(t, "Plants make food from light.", captured.GetInput().GetText())
	assert.Equal(t, "en-US", captured.GetVoice().GetLanguageCode())
	assert.Equal(t, "en-US-Wavenet-D", captured.GetVoice().GetName())
	assert.Equal(t, texttospeechpb.AudioEncoding_MP3, captured.GetAudioConfig().GetAudioEncoding())
}

func TestGoogleSynthesizeFailure(t *testing.T) {
	s := &googleSynthesizer{
		synthesize: func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
			return nil, errors.New("permission denied")
		},
		logger: logger.NewNop(),
	}

	_, err := s.Synthesize(context.Background(), "text")
	var capErr *capability.Error
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, capabilityName, capErr.Capability)
}

func TestOpenAISynthesize(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/audio/speech") {
			http.NotFound(w, r)
			return
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-openai"))
	}))
	defer srv.Close()

	s := New(context.Background(), Options{Provider: "openai", APIKey: "sk-test", BaseURL: srv.URL + "/v1/"}, executor.New(), logger.NewNop())
	require.True(t, s.IsConfigured())

	audio, err := s.Synthesize(context.Background(), "Short summary.")
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-openai"), audio)

	assert.Equal(t, "Short summary.", captured["input"])
	assert.Equal(t, "tts-1", captured["model"])
	assert.Equal(t, openaiVoice, captured["voice"])
	assert.Equal(t, "mp3", captured["response_format"])
}

type fakeExecutor struct {
	calls   [][]string
	failOn  string
	mp3Data []byte
	spoken  string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if name == f.failOn {
		return "", errors.New("exit status 1")
	}
	for i, arg := range args {
		if arg == "-f" && i+1 < len(args) {
			data, err := os.ReadFile(filepath.Join(dir, args[i+1]))
			if err != nil {
				return "", err
			}
			f.spoken = string(data)
		}
	}
	if name == "ffmpeg" {
		out := args[len(args)-1]
		return "", os.WriteFile(filepath.Join(dir, out), f.mp3Data, 0644)
	}
	return "", nil
}

func TestCommandSynthesize(t *testing.T) {
	exec := &fakeExecutor{mp3Data: []byte("ID3-local")}
	s := newCommand(Options{
		SpeechBinary: "espeak-ng",
		FFmpegBinary: "ffmpeg",
		TempDir:      t.TempDir(),
	}, exec, logger.NewNop())

	text := "- Cells are tiny factories\n- **Mitochondria** make energy"
	audio, err := s.Synthesize(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-local"), audio)

	require.Len(t, exec.calls, 2)
	assert.Equal(t, []string{"espeak-ng", "-v", "en-us", "-w", "speech.wav", "-f", "speech.txt"}, exec.calls[0])
	for _, arg := range exec.calls[0] {
		assert.NotContains(t, arg, "Cells", "text is never passed as an argument")
	}
	assert.Equal(t, text, exec.spoken)
	assert.Equal(t, "ffmpeg", exec.calls[1][0])
}

func TestCommandSynthesizeFailure(t *testing.T) {
	exec := &fakeExecutor{failOn: "espeak-ng"}
	s := newCommand(Options{SpeechBinary: "espeak-ng", FFmpegBinary: "ffmpeg", TempDir: t.TempDir()}, exec, logger.NewNop())

	_, err := s.Synthesize(context.Background(), "text")
	require.Error(t, err)
	assert.NotErrorIs(t, err, capability.ErrUnavailable)
	assert.Len(t, exec.calls, 1, "ffmpeg is not run after speech rendering fails")
}
