package visual

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsExcerpt(t *testing.T) {
	prompt := BuildPrompt("Hello world")

	assert.True(t, strings.HasPrefix(prompt, "Create a simple infographic or diagram to explain:\n\nHello world\n"))
	for _, element := range []string{
		"Key concepts as boxes or circles",
		"Connecting arrows showing relationships",
		"Simple icons or symbols",
		"Clear, readable text",
		"Bright, engaging colors",
	} {
		assert.Contains(t, prompt, element)
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	excerpt := strings.Repeat("energy flows through ecosystems ", 9)
	assert.Equal(t, BuildPrompt(excerpt), BuildPrompt(excerpt))
	assert.NotEqual(t, BuildPrompt("a"), BuildPrompt("b"))
}

func TestBuildPromptKeepsFormatVerbs(t *testing.T) {
	prompt := BuildPrompt("growth of 50% per year")
	assert.Contains(t, prompt, "growth of 50% per year")
}
