package constants

import "strings"

// MIME types accepted for CV import.
const (
	MIMEPDF   = "application/pdf"
	MIMEDoc   = "application/msword"
	MIMEDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEPlain = "text/plain"
)

// MaxImportFileSize caps one uploaded CV at 10MB.
const MaxImportFileSize = 10 << 20

// AllowedImportMIMETypes holds the MIME allow-list for import uploads.
// General attachments accept a broader list; that lives outside the import engine.
var AllowedImportMIMETypes = map[string]struct{}{
	MIMEPDF:   {},
	MIMEDoc:   {},
	MIMEDocx:  {},
	MIMEPlain: {},
}

// AllowedImportMIME reports whether mimeType is importable. Parameters after
// a semicolon (charset etc.) are ignored.
func AllowedImportMIME(mimeType string) bool {
	_, ok := AllowedImportMIMETypes[NormalizeMIME(mimeType)]
	return ok
}

// NormalizeMIME lowercases a MIME type and strips parameters.
func NormalizeMIME(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// MIMEByExtension maps a file extension to an importable MIME type, for
// callers (like the batch CLI) that only have a filename. Returns "" when
// the extension is not importable.
func MIMEByExtension(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return MIMEPDF
	case "doc":
		return MIMEDoc
	case "docx":
		return MIMEDocx
	case "txt":
		return MIMEPlain
	}
	return ""
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
