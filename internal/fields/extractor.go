package fields

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"
)

// Fields holds the heuristic extraction result. Every field is optional:
// a nil name/email/phone is a valid, expected outcome, never an error.
// Confidence is a document-quality signal (0-100), stored verbatim and
// never used to block ingestion.
type Fields struct {
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Confidence int     `json:"confidence"`
}

// Extractor derives candidate fields from extracted CV text. The heuristic
// implementation below is the default; an ML-backed one can replace it
// without touching the batch processor.
type Extractor interface {
	ExtractFields(text string) Fields
}

// Additive confidence weights.
const (
	weightName  = 40
	weightEmail = 40
	weightPhone = 20
)

// nameScanLines bounds the top-down line scan for a name.
const nameScanLines = 12

var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Ordered international-leaning phone patterns; first match with >= 8
	// digits wins.
	rePhones = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[\s.\-]?\(?\d{1,4}\)?(?:[\s.\-]?\d{2,4}){1,4}`),
		regexp.MustCompile(`\b00\d{1,3}(?:[\s.\-]?\d{2,4}){2,4}\b`),
		regexp.MustCompile(`\b0\d{1,3}(?:[\s.\-]?\d{2,4}){2,4}\b`),
		regexp.MustCompile(`\b\d{2,4}(?:[\s.\-]\d{2,4}){2,4}\b`),
	}

	reNameLabel   = regexp.MustCompile(`(?im)^\s*name\s*[:\-]\s*(\S.*)$`)
	reCapitalized = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2}\b`)
	reDigit       = regexp.MustCompile(`\d`)
	reURL         = regexp.MustCompile(`(?i)https?://|www\.|linkedin\.com`)
)

// Section headers and other words that disqualify a line from being a name.
var nonNameMarkers = []string{
	"curriculum", "resume", "vitae", "experience", "education", "skills",
	"profile", "summary", "objective", "contact", "languages", "references",
	"address", "about", "projects", "certifications",
}

// HeuristicExtractor is the regex/line-scan field extractor.
type HeuristicExtractor struct {
	logger *slog.Logger
}

func NewHeuristicExtractor(logger *slog.Logger) *HeuristicExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &HeuristicExtractor{logger: logger}
}

// ExtractFields runs the email, phone and name heuristics over text and
// scores the result additively (name 40, email 40, phone 20).
func (e *HeuristicExtractor) ExtractFields(text string) Fields {
	var f Fields
	f.Email = extractEmail(text)
	f.Phone = extractPhone(text)
	f.FullName = extractName(text)

	if f.FullName != nil {
		f.Confidence += weightName
	}
	if f.Email != nil {
		f.Confidence += weightEmail
	}
	if f.Phone != nil {
		f.Confidence += weightPhone
	}

	e.logger.Debug("fields extracted",
		"has_name", f.FullName != nil,
		"has_email", f.Email != nil,
		"has_phone", f.Phone != nil,
		"confidence", f.Confidence,
	)
	return f
}

// extractEmail returns the first non-placeholder email match, the first raw
// match if everything looked like a placeholder, or nil.
func extractEmail(text string) *string {
	matches := reEmail.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	for _, m := range matches {
		if !isPlaceholderEmail(m) {
			v := m
			return &v
		}
	}
	v := matches[0]
	return &v
}

func isPlaceholderEmail(email string) bool {
	lower := strings.ToLower(email)
	return strings.Contains(lower, "example") ||
		strings.Contains(lower, "test@") ||
		strings.Contains(lower, "@domain")
}

// extractPhone tries the ordered phone patterns and accepts the first match
// with at least 8 digits once separators are stripped.
func extractPhone(text string) *string {
	for _, re := range rePhones {
		for _, m := range re.FindAllString(text, -1) {
			if digitCount(m) >= 8 {
				v := strings.TrimSpace(m)
				return &v
			}
		}
	}
	return nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// extractName scans the first lines for a short, mostly-capitalized line,
// then falls back to a "Name:" label, then to consecutive capitalized words
// near the top of the document.
func extractName(text string) *string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		if name, ok := nameFromLine(line); ok {
			return &name
		}
	}

	if m := reNameLabel.FindStringSubmatch(text); m != nil {
		if name, ok := nameFromLine(m[1]); ok {
			return &name
		}
	}

	head := text
	if len(head) > 500 {
		head = head[:500]
	}
	for _, m := range reCapitalized.FindAllString(head, -1) {
		if !containsNonNameMarker(m) {
			name := titleCaseWords(m)
			return &name
		}
	}
	return nil
}

// nameFromLine accepts a line of 1-5 words when the majority of the words
// look like capitalized alphabetic tokens and no disqualifier is present.
func nameFromLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 60 {
		return "", false
	}
	if strings.ContainsRune(trimmed, '@') || reDigit.MatchString(trimmed) || reURL.MatchString(trimmed) {
		return "", false
	}
	if containsNonNameMarker(trimmed) {
		return "", false
	}

	words := strings.Fields(trimmed)
	if len(words) < 1 || len(words) > 5 {
		return "", false
	}
	capitalized := 0
	for _, w := range words {
		if looksCapitalizedWord(w) {
			capitalized++
		}
	}
	if capitalized*2 <= len(words) {
		return "", false
	}
	return titleCaseWords(trimmed), true
}

func containsNonNameMarker(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range nonNameMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// looksCapitalizedWord accepts words like "Smith", "O'Brien" or
// "Vandenberghe-Claes": leading uppercase, alphabetic tail.
func looksCapitalizedWord(w string) bool {
	runes := []rune(w)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
