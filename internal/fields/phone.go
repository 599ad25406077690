package fields

import (
	"strings"

	"github.com/talentops/recruit-crm/constants"
)

// NormalizePhone converts a loosely formatted phone string into an
// E.164-ish form using the default country's dialing prefix. Returns ""
// when no digits survive. Intentionally approximate: no length validation,
// no numbering-plan awareness.
func NormalizePhone(raw, defaultCountry string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || s == "+" {
		return ""
	}
	if strings.HasPrefix(s, "+") {
		return s
	}
	if strings.HasPrefix(s, "00") {
		return "+" + s[2:]
	}
	// strip one local trunk prefix, then prepend the country's dialing code
	s = strings.TrimPrefix(s, "0")
	if s == "" {
		return ""
	}
	return constants.DialingPrefix(defaultCountry) + s
}
