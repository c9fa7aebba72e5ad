package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/openai/openai-go"

	"github.com/nguyentantai21042004/studyflow/internal/capability"
)

var errEmptyAudio = errors.New("empty audio returned")

func (unavailableSynthesizer) IsConfigured() bool { return false }

func (unavailableSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return nil, capability.ErrUnavailable
}

func (unavailableSynthesizer) Close() error { return nil }

func (s *googleSynthesizer) IsConfigured() bool { return true }

// Synthesize requests MP3 audio for text with the fixed voice
func (s *googleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.logger.Debug(ctx, "Synthesizing %d bytes with %s", len(text), VoiceName)

	resp, err := s.synthesize(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: LanguageCode,
			Name:         VoiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, capability.Fail(capabilityName, err)
	}
	if len(resp.GetAudioContent()) == 0 {
		return nil, capability.Fail(capabilityName, errEmptyAudio)
	}
	return resp.GetAudioContent(), nil
}

func (s *googleSynthesizer) Close() error {
	if s.close != nil {
		return s.close()
	}
	return nil
}

func (s *openaiSynthesizer) IsConfigured() bool { return true }

// Synthesize requests MP3 speech from the OpenAI audio endpoint
func (s *openaiSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.logger.Debug(ctx, "Synthesizing %d bytes with %s", len(text), s.model)

	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Input:          text,
		Model:          openai.SpeechModel(s.model),
		Voice:          openai.AudioSpeechNewParamsVoice(openaiVoice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, capability.Fail(capabilityName, err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, capability.Fail(capabilityName, fmt.Errorf("read audio: %w", err))
	}
	if len(audio) == 0 {
		return nil, capability.Fail(capabilityName, errEmptyAudio)
	}
	return audio, nil
}

func (s *openaiSynthesizer) Close() error { return nil }

func (s *commandSynthesizer) IsConfigured() bool { return true }

// Synthesize renders WAV with the speech binary, then encodes MP3 with ffmpeg
// in an isolated temp dir per call
func (s *commandSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if s.tempDir != "" {
		if err := os.MkdirAll(s.tempDir, 0755); err != nil {
			return nil, capability.Fail(capabilityName, fmt.Errorf("create temp dir: %w", err))
		}
	}
	workDir, err := os.MkdirTemp(s.tempDir, "voice-*")
	if err != nil {
		return nil, capability.Fail(capabilityName, fmt.Errorf("create work dir: %w", err))
	}
	defer os.RemoveAll(workDir)

	// Text is read from a file so a leading "-" is never parsed as a flag
	if err := os.WriteFile(filepath.Join(workDir, "speech.txt"), []byte(text), 0644); err != nil {
		return nil, capability.Fail(capabilityName, fmt.Errorf("write speech text: %w", err))
	}

	// -v: voice / language
	// -w: write WAV instead of playing
	// -f: read text from file
	speechArgs := []string{"-v", s.voice, "-w", "speech.wav", "-f", "speech.txt"}
	if _, err := s.executor.ExecuteInDir(ctx, workDir, s.speechBinary, speechArgs...); err != nil {
		return nil, capability.Fail(capabilityName, fmt.Errorf("render speech: %w", err))
	}

	ffmpegArgs := []string{
		"-y",
		"-i", "speech.wav",
		"-codec:a", "libmp3lame",
		"-q:a", "4",
		"speech.mp3",
	}
	if _, err := s.executor.ExecuteInDir(ctx, workDir, s.ffmpegBinary, ffmpegArgs...); err != nil {
		return nil, capability.Fail(capabilityName, fmt.Errorf("encode mp3: %w", err))
	}

	audio, err := os.ReadFile(filepath.Join(workDir, "speech.mp3"))
	if err != nil {
		return nil, capability.Fail(capabilityName, fmt.Errorf("read mp3: %w", err))
	}
	if len(audio) == 0 {
		return nil, capability.Fail(capabilityName, errEmptyAudio)
	}

	s.logger.Debug(ctx, "Synthesized %d bytes of audio locally", len(audio))
	return audio, nil
}

func (s *commandSynthesizer) Close() error { return nil }
