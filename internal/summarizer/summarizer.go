package summarizer

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/studyflow/internal/capability"
	"github.com/nguyentantai21042004/studyflow/internal/models"
)

var errEmptyResponse = errors.New("empty response from model")

func (unavailableSummarizer) IsConfigured() bool { return false }

func (unavailableSummarizer) Summarize(ctx context.Context, chunk string, level models.Level) (string, error) {
	return "", capability.ErrUnavailable
}

func (s *openaiSummarizer) IsConfigured() bool { return true }

// Summarize sends one chat completion request; failures are not retried
func (s *openaiSummarizer) Summarize(ctx context.Context, chunk string, level models.Level) (string, error) {
	s.logger.Debug(ctx, "Requesting %s summary from %s (%d bytes)", level, s.model, len(chunk))

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(BuildPrompt(chunk, level)),
		},
		MaxTokens:   openai.Int(MaxOutputTokens),
		Temperature: openai.Float(Temperature),
	})
	if err != nil {
		return "", capability.Fail(capabilityName, err)
	}

	if len(resp.Choices) == 0 {
		return "", capability.Fail(capabilityName, errEmptyResponse)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", capability.Fail(capabilityName, errEmptyResponse)
	}
	return text, nil
}

func (s *geminiSummarizer) IsConfigured() bool { return true }

// Summarize sends the prompt to Gemini and concatenates the candidate's text parts
func (s *geminiSummarizer) Summarize(ctx context.Context, chunk string, level models.Level) (string, error) {
	s.logger.Debug(ctx, "Requesting %s summary from %s (%d bytes)", level, s.model, len(chunk))

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(BuildPrompt(chunk, level)), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](Temperature),
		MaxOutputTokens:   MaxOutputTokens,
	})
	if err != nil {
		return "", capability.Fail(capabilityName, err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var sb strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			return text, nil
		}
	}

	return "", capability.Fail(capabilityName, errEmptyResponse)
}
