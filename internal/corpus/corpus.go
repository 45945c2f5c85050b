// Package corpus loads the startup document list from config.
package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/letterdex/internal/config"
)

// maxLineBytes bounds a single document read from a corpus file.
const maxLineBytes = 1 << 20

// Load returns the inline documents followed by the lines of the corpus file, if any.
func Load(cfg config.CorpusConfig) ([]string, error) {
	docs := append([]string(nil), cfg.Documents...)
	if cfg.File == "" {
		return docs, nil
	}

	f, err := os.Open(filepath.Clean(cfg.File))
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer func() { _ = f.Close() }()

	lines, err := ReadLines(f, cfg.KeepBlank)
	if err != nil {
		return nil, fmt.Errorf("read corpus file %s: %w", cfg.File, err)
	}
	return append(docs, lines...), nil
}

// ReadLines returns one document per line; CRLF endings are accepted.
// Blank lines are dropped unless keepBlank is set.
func ReadLines(r io.Reader, keepBlank bool) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if line == "" && !keepBlank {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return lines, nil
}

// FileChecker reports whether the corpus file is still readable.
type FileChecker struct {
	Path string
}

// HealthCheck stats the corpus file.
func (c FileChecker) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("corpus file: %w", err)
	}
	return nil
}
