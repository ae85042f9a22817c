package answers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/catalog"
)

// Loader reads answer documents from files, globs, or standard input.
type Loader struct {
	logger *zap.Logger
	stdin  io.Reader
}

// NewLoader returns a Loader. A nil logger discards output.
func NewLoader(logger *zap.Logger, stdin io.Reader) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Loader{logger: logger, stdin: stdin}
}

// Expand resolves glob patterns into a sorted, de-duplicated path list.
// Plain paths and "-" pass through unchanged so that read errors name them.
func Expand(patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, pattern := range patterns {
		if pattern == StdinPath || !hasMeta(pattern) {
			add(pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: %w", pattern, ErrNoMatches)
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// Load reads one document. The catalog version is checked and a mismatch is
// logged rather than returned.
func (l *Loader) Load(path string) (*Document, error) {
	var (
		data   []byte
		err    error
		format = FormatFor(path)
	)
	if path == StdinPath {
		data, err = io.ReadAll(l.stdin)
		format = FormatJSON
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, &DocumentError{Path: path, Err: err}
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, &DocumentError{Path: path, Err: err}
	}
	doc.Path = path

	if err := CheckVersion(doc.CatalogVersion, catalog.Version); err != nil {
		l.logger.Warn("catalog version mismatch",
			zap.String("path", path),
			zap.Error(err))
	}
	l.logger.Debug("loaded answer document",
		zap.String("path", path),
		zap.String("respondent", doc.Respondent),
		zap.Int("answers", len(doc.Answers)))
	return doc, nil
}

// LoadAll expands patterns and loads every matching document in order. It
// stops at the first failure.
func (l *Loader) LoadAll(ctx context.Context, patterns []string) ([]*Document, error) {
	paths, err := Expand(patterns)
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := l.Load(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
