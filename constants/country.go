package constants

import "strings"

// DialingPrefixes maps ISO-ish country codes to international dialing
// prefixes for phone normalization. Configuration data, not logic: extend
// the table without touching the normalization algorithm.
var DialingPrefixes = map[string]string{
	"BE": "+32",
	"NL": "+31",
	"FR": "+33",
	"DE": "+49",
	"LU": "+352",
	"GB": "+44",
	"UK": "+44", // common alias
	"IE": "+353",
	"ES": "+34",
	"IT": "+39",
	"PT": "+351",
	"CH": "+41",
	"AT": "+43",
	"PL": "+48",
	"RO": "+40",
	"US": "+1",
	"CA": "+1",
}

// DefaultDialingPrefix is used when a country code is missing or unknown.
const DefaultDialingPrefix = "+32"

// DialingPrefix returns the prefix for a country code, falling back to
// DefaultDialingPrefix for unknown codes.
func DialingPrefix(country string) string {
	if p, ok := DialingPrefixes[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return p
	}
	return DefaultDialingPrefix
}
