package extract

import (
	"fmt"
	"html"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const maxDocumentSize = 10 << 20 // 10 MiB

// UnsupportedFormatError reports a document extension no extractor handles.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q (supported: .txt, .md, .markdown, .html, .htm)", e.Ext)
}

// Extractor pulls analyzable plain text out of uploaded documents.
// Plain-text formats pass through verbatim; HTML goes through article
// extraction with a tag-stripping fallback for pages readability cannot
// parse.
type Extractor struct {
	sanitizer *bluemonday.Policy
	logger    *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

// FromFile returns the plain text of the document at path.
func (e *Extractor) FromFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md", ".markdown":
		return e.readPlain(path)
	case ".html", ".htm":
		return e.readHTML(path)
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

func (e *Extractor) readPlain(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat document: %w", err)
	}
	if info.Size() > maxDocumentSize {
		return "", fmt.Errorf("document too large: %d bytes (max %d)", info.Size(), maxDocumentSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}

func (e *Extractor) readHTML(path string) (string, error) {
	raw, err := e.readPlain(path)
	if err != nil {
		return "", err
	}

	pageURL := &url.URL{Scheme: "file", Path: path}
	article, rerr := readability.FromReader(strings.NewReader(raw), pageURL)
	if rerr == nil {
		if text := strings.TrimSpace(article.TextContent); text != "" {
			return text, nil
		}
	} else {
		e.logger.Warn("readability parse failed, stripping tags instead",
			zap.String("path", path),
			zap.Error(rerr))
	}

	stripped := e.sanitizer.Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(stripped)), nil
}
