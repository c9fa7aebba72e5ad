package models

import (
	"fmt"
	"strings"
)

// Level is the target audience sophistication for a summary.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelBeginner:
		return LevelBeginner, nil
	case LevelIntermediate:
		return LevelIntermediate, nil
	case LevelAdvanced:
		return LevelAdvanced, nil
	}
	return "", fmt.Errorf("unknown complexity level %q", s)
}

// Format is one requested output of the pipeline.
type Format string

const (
	FormatSummary           Format = "summary"
	FormatVoiceNote         Format = "voice_note"
	FormatVisualExplanation Format = "visual_explanation"
)

// Formats lists every format in pipeline order.
var Formats = []Format{FormatSummary, FormatVoiceNote, FormatVisualExplanation}

// ParseFormat accepts canonical names, display names ("Voice Note") and short forms ("voice").
func ParseFormat(s string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	switch key {
	case "summary":
		return FormatSummary, nil
	case "voice_note", "voice", "audio":
		return FormatVoiceNote, nil
	case "visual_explanation", "visual":
		return FormatVisualExplanation, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// ParseFormats parses a list of format names, dropping duplicates.
func ParseFormats(names []string) ([]Format, error) {
	var formats []Format
	seen := make(map[Format]bool)
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	return formats, nil
}

// Request is supplied by the caller and is immutable for one pipeline run.
type Request struct {
	Level   Level
	Formats []Format
}

// Wants reports whether f was requested.
func (r Request) Wants(f Format) bool {
	for _, want := range r.Formats {
		if want == f {
			return true
		}
	}
	return false
}

// Source is raw caller input: an uploaded file, pasted text, or both.
type Source struct {
	Filename string
	MIMEHint string
	Data     []byte
	Text     string
}

// HasFile reports whether a file was uploaded, even an empty one.
func (s Source) HasFile() bool {
	return s.Filename != "" || len(s.Data) > 0
}
