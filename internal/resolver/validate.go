package resolver

import (
	"strings"
	"unicode"

	"domainage/pkg/derrors"
)

// NormalizeDomain returns a canonical host name for the given user input, or
// an invalid-domain error when no plausible host can be derived.
//
// The normalization rules are intentionally forgiving about how analysts
// paste indicators:
//   - Strip a leading http:// or https:// scheme
//   - Cut everything from the first "/" (paths, trailing slashes)
//   - Drop a single trailing dot (FQDN notation)
//   - Lower-case the host
//
// Validation then requires a bare hostname: non-empty, at least one dot, no
// whitespace or control characters, labels of 1-63 characters drawn from
// letters, digits and hyphens, no label starting or ending with a hyphen,
// and at most 253 characters overall.
func NormalizeDomain(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", derrors.With(derrors.ErrInvalidDomain, "domain is empty")
	}

	name = strings.TrimPrefix(name, "http://")
	name = strings.TrimPrefix(name, "https://")
	if i := strings.Index(name, "/"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSuffix(name, ".")
	name = strings.ToLower(name)

	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return "", derrors.With(derrors.ErrInvalidDomain, "domain %q contains whitespace or control characters", raw)
		}
	}

	if !strings.Contains(name, ".") {
		return "", derrors.With(derrors.ErrInvalidDomain, "domain %q has no dot", raw)
	}
	if len(name) > 253 {
		return "", derrors.With(derrors.ErrInvalidDomain, "domain %q is too long", raw)
	}

	for _, label := range strings.Split(name, ".") {
		if err := validateLabel(label, raw); err != nil {
			return "", err
		}
	}

	return name, nil
}

func validateLabel(label, raw string) error {
	if label == "" {
		return derrors.With(derrors.ErrInvalidDomain, "domain %q has an empty label", raw)
	}
	if len(label) > 63 {
		return derrors.With(derrors.ErrInvalidDomain, "domain %q has a label longer than 63 characters", raw)
	}
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return derrors.With(derrors.ErrInvalidDomain, "domain %q has a label starting or ending with a hyphen", raw)
	}
	for _, r := range label {
		isLetter := r >= 'a' && r <= 'z'
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit && r != '-' {
			return derrors.With(derrors.ErrInvalidDomain, "domain %q contains invalid character %q", raw, r)
		}
	}

	return nil
}
