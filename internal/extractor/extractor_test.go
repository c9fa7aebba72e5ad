package extractor

import (
	"bytes"
	"context"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/nguyentantai21042004/studyflow/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	for _, text := range pages {
		doc.AddPage()
		if text != "" {
			doc.SetFont("Helvetica", "", 12)
			doc.Cell(120, 10, text)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestExtractPlainText(t *testing.T) {
	ext := New(logger.NewNop())

	tests := []struct {
		name string
		hint string
		data string
	}{
		{"plain hint", "text/plain", "Photosynthesis converts light into energy."},
		{"hint with charset", "text/plain; charset=utf-8", "Héllo wörld"},
		{"markdown", "text/markdown", "# Title\n\n- point"},
		{"sniffed", "", "Just some pasted notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ext.Extract(context.Background(), []byte(tt.data), tt.hint)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestExtractInvalidUTF8(t *testing.T) {
	ext := New(logger.NewNop())

	_, err := ext.Extract(context.Background(), []byte{0xff, 0xfe, 0x41}, MIMEPlainText)
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractUnsupportedType(t *testing.T) {
	ext := New(logger.NewNop())

	_, err := ext.Extract(context.Background(), []byte("PK\x03\x04"), "application/zip")
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractMalformedPDF(t *testing.T) {
	ext := New(logger.NewNop())

	_, err := ext.Extract(context.Background(), []byte("%PDF-1.4\nthis is not a pdf body"), MIMEPDF)
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractPDF(t *testing.T) {
	ext := New(logger.NewNop())
	data := buildPDF(t, "Hello from page one", "World on page two")

	got, err := ext.Extract(context.Background(), data, MIMEPDF)
	require.NoError(t, err)

	assert.Contains(t, got, "Hello")
	assert.Contains(t, got, "World")
	assert.Less(t, bytes.Index([]byte(got), []byte("Hello")), bytes.Index([]byte(got), []byte("World")))
	assert.True(t, len(got) > 0 && got[len(got)-1] == '\n')
}

func TestExtractPDFBlankPagesContributeEmptySegments(t *testing.T) {
	ext := New(logger.NewNop())
	data := buildPDF(t, "", "")

	got, err := ext.Extract(context.Background(), data, "")
	require.NoError(t, err)
	assert.Equal(t, "\n\n", got)
}

func TestDetectMIME(t *testing.T) {
	assert.Equal(t, MIMEPDF, DetectMIME(buildPDF(t, "x")))
	assert.Equal(t, MIMEPlainText, DetectMIME([]byte("plain words")))
	assert.Equal(t, "application/octet-stream", DetectMIME(nil))
}

func TestMIMEFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"paper.pdf", MIMEPDF},
		{"NOTES.PDF", MIMEPDF},
		{"notes.txt", MIMEPlainText},
		{"readme.md", "text/markdown"},
		{"lecture.mp4", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MIMEFromFilename(tt.name), tt.name)
	}
}
