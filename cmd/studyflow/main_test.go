package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/studyflow/internal/models"
)

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	out := filepath.Join(root, "output")
	cfg := fmt.Sprintf(`paths:
  input: %s
  output: %s
  archived: %s
  temp: %s
defaults:
  level: beginner
  formats: [visual_explanation]
logging:
  level: error
`, filepath.Join(root, "input"), out, filepath.Join(root, "archived"), filepath.Join(root, "temp"))

	path := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path, out
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"process", "watch", "serve"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestProcessCommand(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	cfgPath, outDir := writeConfig(t)

	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"process", "--config", cfgPath, "--text", "Photosynthesis turns light into sugar."})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "Visual Explanation")
	assert.Contains(t, stdout.String(), "Photosynthesis turns light into sugar.")
	assert.Contains(t, stdout.String(), "Compression: 0.0%")

	matches, err := filepath.Glob(filepath.Join(outDir, "visual_prompt_*.txt"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestProcessCommandRejectsEmptyInput(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"process", "--config", cfgPath, "--text", "   "})
	assert.Error(t, cmd.Execute())
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, &models.Result{
		Artifacts: models.Artifacts{Summary: "- key idea"},
		Stages: []models.StageReport{
			{Format: models.FormatSummary, Status: models.StageOK},
			{Format: models.FormatVoiceNote, Status: models.StageUnavailable},
		},
		Stats: models.Statistics{OriginalLength: 200, SummaryLength: 10, CompressionRatio: 5},
	}, []string{"summary_20261019_080509.txt"})

	out := buf.String()
	assert.Contains(t, out, "- key idea")
	assert.Contains(t, out, "voice_note: unavailable")
	assert.Contains(t, out, "Compression: 5.0%")
	assert.Contains(t, out, "Saved summary_20261019_080509.txt")
}
