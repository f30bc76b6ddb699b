package resolver

import (
	"strings"
	"time"

	whoisparser "github.com/likexian/whois-parser"
)

// creationLabels are the registrar field labels that may carry the
// registration date, in priority order. Matching is case-insensitive on the
// text before the first colon of each line.
var creationLabels = []string{ //nolint: gochecknoglobals
	"creation date",
	"created on",
	"created",
	"registered on",
	"registered",
	"registration date",
	"registration time",
	"domain record activated",
}

// dateFormats is the ordered list of layouts attempted against a captured
// value. The first successful parse wins, so more specific layouts come
// first.
var dateFormats = []string{ //nolint: gochecknoglobals
	time.RFC3339,                // 1995-08-14T04:00:00Z
	"2006-01-02T15:04:05",       // ISO without zone, seen at some ccTLDs
	"2006-01-02 15:04:05 MST",   // 2001-02-03 04:05:06 UTC
	"2006-01-02 15:04:05",       // 2001-02-03 04:05:06
	"2006-01-02",                // 2001-02-03
	"02-Jan-2006 15:04:05 MST",  // 03-Feb-2001 04:05:06 UTC
	"02-Jan-2006",               // 03-Feb-2001 (.uk "Registered on")
	"2-Jan-2006",                // 3-Feb-2001
	"2006.01.02 15:04:05",       // 2001.02.03 04:05:06 (.ru style)
	"2006.01.02",                // 2001.02.03
	"2006/01/02",                // 2001/02/03
	"January 2 2006",            // February 3 2001
	"20060102",                  // 20010203
}

// ExtractCreationDate returns the registration creation date found in a raw
// WHOIS response, or ok=false when no known label carries a parsable value.
// Absence is an expected outcome for privacy-shielded domains, not an error.
//
// The label scan is evaluated deterministically: labels in priority order,
// formats in priority order, first successful parse wins. When no known
// label matches, the structured whois-parser library gets a shot as a
// fallback net for registrar formats outside the label list.
func ExtractCreationDate(raw string) (time.Time, bool) {
	lines := strings.Split(raw, "\n")
	for _, label := range creationLabels {
		for _, line := range lines {
			key, value, found := strings.Cut(line, ":")
			if !found {
				continue
			}
			if !strings.EqualFold(strings.TrimSpace(key), label) {
				continue
			}
			if t, ok := parseDateValue(value); ok {
				return t, true
			}
		}
	}

	if info, err := whoisparser.Parse(raw); err == nil && info.Domain != nil {
		if info.Domain.CreatedDateInTime != nil {
			return *info.Domain.CreatedDateInTime, true
		}
		if t, ok := parseDateValue(info.Domain.CreatedDate); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// ExtractRegistrar returns the registrar name found in a raw WHOIS response,
// or "" when none is recognizable. Best effort, diagnostic only.
func ExtractRegistrar(raw string) string {
	if info, err := whoisparser.Parse(raw); err == nil && info.Registrar != nil && info.Registrar.Name != "" {
		return info.Registrar.Name
	}

	for _, line := range strings.Split(raw, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "registrar") {
			return strings.TrimSpace(value)
		}
	}

	return ""
}

// parseDateValue attempts the ordered format list against a single captured
// value and returns the first successful parse.
func parseDateValue(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
