// Package visual builds the descriptive prompt for a visual study aid.
package visual

import "fmt"

const promptTemplate = `Create a simple infographic or diagram to explain:

%s

Visual elements should include:
- Key concepts as boxes or circles
- Connecting arrows showing relationships
- Simple icons or symbols
- Clear, readable text
- Bright, engaging colors`

// BuildPrompt embeds an excerpt into the fixed visual template.
// The caller truncates the excerpt; identical input yields an identical prompt.
func BuildPrompt(excerpt string) string {
	return fmt.Sprintf(promptTemplate, excerpt)
}
