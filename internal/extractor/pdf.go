package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDF validates the PDF structure and concatenates page text in order.
// Every page contributes its text followed by a newline; pages without text contribute an empty segment.
func (e *implExtractor) extractPDF(ctx context.Context, data []byte) (text string, err error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return "", fmt.Errorf("%w: invalid PDF: %v", ErrExtraction, err)
	}

	// The page parser panics on some malformed content streams
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: read PDF: %v", ErrExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open PDF: %v", ErrExtraction, err)
	}

	pageCount := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if !page.V.IsNull() {
			pageText, err := page.GetPlainText(nil)
			if err != nil {
				e.logger.Warn(ctx, "Page %d yielded no text: %v", i, err)
			} else {
				sb.WriteString(pageText)
			}
		}
		sb.WriteString("\n")
	}

	e.logger.Debug(ctx, "Extracted %d pages from PDF", pageCount)
	return sb.String(), nil
}
