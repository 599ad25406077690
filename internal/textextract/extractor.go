package textextract

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"

	"github.com/talentops/recruit-crm/constants"
)

// ErrUnsupportedType is returned for MIME types outside the import allow-list.
// Never an empty-string fallback: callers must see the rejection.
var ErrUnsupportedType = errors.New("unsupported content type")

// Extractor converts raw file bytes into plain text, dispatching on the
// declared MIME type.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract returns normalized plain text for the given bytes.
// PDF and DOCX go through docconv; legacy Word is a best-effort strip of
// printable bytes, not a real format parser; plain text passes through.
func (e *Extractor) Extract(data []byte, mimeType string) (string, error) {
	mt := constants.NormalizeMIME(mimeType)
	switch mt {
	case constants.MIMEPDF, constants.MIMEDocx:
		res, err := docconv.Convert(bytes.NewReader(data), mt, true)
		if err != nil {
			e.logger.Warn("document conversion failed", "content_type", mt, "error", err)
			return "", fmt.Errorf("parse document: %w", err)
		}
		return Normalize(res.Body), nil
	case constants.MIMEDoc:
		return Normalize(stripToPrintable(data)), nil
	case constants.MIMEPlain:
		if !utf8.Valid(data) {
			return Normalize(stripToPrintable(data)), nil
		}
		return Normalize(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, mimeType)
	}
}

// stripToPrintable keeps printable ASCII plus newlines and collapses the
// rest to spaces. Good enough to surface names and email addresses from
// binary containers we do not parse properly.
func stripToPrintable(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	lastSpace := false
	for _, c := range data {
		switch {
		case c == '\n':
			b.WriteByte('\n')
			lastSpace = false
		case c >= 0x20 && c <= 0x7e:
			b.WriteByte(c)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return b.String()
}
