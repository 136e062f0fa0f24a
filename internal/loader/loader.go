// Package loader reads a target file into memory as UTF-8 text.
// HTML targets can be reduced to their readable content first, so the
// scan sees prose instead of markup.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrFileUnreadable wraps every failure to obtain a target's content.
var ErrFileUnreadable = errors.New("file unreadable")

// Options controls how targets are turned into text.
type Options struct {
	// HTML converts .html and .htm targets to Markdown before scanning.
	HTML bool
}

// Loader reads targets. It holds no per-file state.
type Loader struct {
	opts        Options
	log         *zap.Logger
	mdConverter *md.Converter
}

// New creates a new Loader. A nil logger discards diagnostics.
func New(opts Options, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		opts:        opts,
		log:         logger,
		mdConverter: md.NewConverter("", true, nil),
	}
}

// Load returns the full content of path. Errors wrap ErrFileUnreadable
// together with the underlying cause.
func (l *Loader) Load(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	l.log.Debug("read target", zap.String("path", path), zap.Int("bytes", len(raw)))

	if l.opts.HTML && isHTML(path) {
		text, err := l.htmlToText(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
		}
		l.log.Debug("converted html target", zap.String("path", path), zap.Int("chars", len(text)))
		return text, nil
	}

	text, err := decodeText(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
	}
	return text, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// decodeText validates UTF-8 and strips a leading byte order mark.
func decodeText(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", errors.New("content is not valid UTF-8")
	}
	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode: %w", err)
	}
	return string(decoded), nil
}
