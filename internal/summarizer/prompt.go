package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/studyflow/internal/models"
)

const (
	// MaxOutputTokens caps the generated summary length.
	MaxOutputTokens = 800
	// Temperature is the sampling temperature for every summary call.
	Temperature = 0.7
)

const systemPrompt = "You are an expert educator who specializes in making complex academic content accessible to students."

const summaryPrompt = `Please simplify the following academic/research content for %s level understanding:

Requirements:
1. Break down complex concepts into simple explanations
2. Use analogies and examples where helpful
3. Create bullet points for key concepts
4. Maintain accuracy while improving clarity
5. Maximum 500 words for summary

Content to simplify:
%s`

// BuildPrompt renders the user prompt for a chunk and level.
func BuildPrompt(chunk string, level models.Level) string {
	return fmt.Sprintf(summaryPrompt, level, chunk)
}
