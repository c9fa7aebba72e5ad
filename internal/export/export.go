package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/studyflow/internal/models"
)

// ErrInvalidName is returned for names that do not refer to an exported file.
var ErrInvalidName = errors.New("invalid export file name")

// maxRunsPerSecond bounds the "_N" counter used when a timestamp is taken.
const maxRunsPerSecond = 1000

// FileName builds "<prefix>_<YYYYMMDD_HHMMSS><ext>".
func FileName(prefix, ext string, at time.Time) string {
	return runFileName(prefix, ext, at, 1)
}

// runFileName appends "_<n>" to the timestamp for the n-th run within one second.
func runFileName(prefix, ext string, at time.Time, n int) string {
	if n <= 1 {
		return fmt.Sprintf("%s_%s%s", prefix, at.Format(TimestampLayout), ext)
	}
	return fmt.Sprintf("%s_%s_%d%s", prefix, at.Format(TimestampLayout), n, ext)
}

type download struct {
	prefix string
	ext    string
	data   []byte
	docx   bool
	name   string
}

func (e *implExporter) Export(ctx context.Context, result *models.Result, at time.Time) ([]string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var files []*download
	a := result.Artifacts
	if a.HasSummary() {
		files = append(files,
			&download{prefix: PrefixSummary, ext: ".txt", data: []byte(a.Summary)},
			&download{prefix: PrefixSummary, ext: ".docx", docx: true},
		)
	}
	if a.HasAudio() {
		files = append(files, &download{prefix: PrefixVoice, ext: ".mp3", data: a.Audio})
	}
	if a.HasVisual() {
		files = append(files, &download{prefix: PrefixVisual, ext: ".txt", data: []byte(a.Visual)})
	}
	if len(files) == 0 {
		return nil, nil
	}

	if err := e.reserve(files, at); err != nil {
		return nil, err
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(e.dir, f.name)
		if f.docx {
			title := fmt.Sprintf("Simplified Summary (%s)", at.Format("2006-01-02 15:04"))
			if err := markdownToDocx(title, a.Summary, path); err != nil {
				// the plain-text download already exists
				e.logger.Warn(ctx, "Failed to write %s: %v", f.name, err)
				os.Remove(path)
				continue
			}
		} else if err := os.WriteFile(path, f.data, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", f.name, err)
		}
		written = append(written, f.name)
	}

	return written, nil
}

// reserve creates every file of one run exclusively, so runs sharing a
// timestamp never overwrite each other. A clash moves the whole run to the
// next "_N" counter.
func (e *implExporter) reserve(files []*download, at time.Time) error {
	for n := 1; n <= maxRunsPerSecond; n++ {
		var created []string
		clash := false
		for _, f := range files {
			f.name = runFileName(f.prefix, f.ext, at, n)
			path := filepath.Join(e.dir, f.name)
			fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
			if errors.Is(err, fs.ErrExist) {
				clash = true
				break
			}
			if err != nil {
				removeAll(created)
				return fmt.Errorf("create %s: %w", f.name, err)
			}
			fh.Close()
			created = append(created, path)
		}
		if !clash {
			return nil
		}
		removeAll(created)
	}
	return fmt.Errorf("no free download name for %s", at.Format(TimestampLayout))
}

func removeAll(paths []string) {
	for _, p := range paths {
		os.Remove(p)
	}
}

// Path rejects anything that is not a bare exported file name
func (e *implExporter) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrInvalidName
	}
	known := false
	for _, prefix := range []string{PrefixSummary, PrefixVoice, PrefixVisual} {
		if strings.HasPrefix(name, prefix+"_") {
			known = true
			break
		}
	}
	if !known {
		return "", ErrInvalidName
	}

	path := filepath.Join(e.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return path, nil
}
