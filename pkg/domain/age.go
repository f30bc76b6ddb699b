package domain

import "time"

// WhoisRecord is the outcome of a WHOIS lookup for a single domain.
// Registrars return creation dates in heterogeneous formats or omit them
// entirely (privacy-protected domains), so CreationDate is optional by design
// and its absence is not an error.
type WhoisRecord struct {
	// CreationDate is the parsed registration date, nil when the registrar
	// response carried no recognizable creation date.
	CreationDate *time.Time `json:"creationDate,omitempty"`
	// Registrar is the registrar name when the response exposed one.
	Registrar string `json:"registrar,omitempty"`
	// Server is the WHOIS server that answered the query, when known.
	Server string `json:"server,omitempty"`
	// Raw is the unparsed registrar response, kept for diagnostic output.
	Raw string `json:"-"`
}

// WaybackSnapshot describes the earliest archived snapshot known to the
// Wayback Machine for a domain. A domain with no snapshots yields
// Available=false, which is a normal outcome.
type WaybackSnapshot struct {
	// Available reports whether any snapshot exists for the domain.
	Available bool `json:"available"`
	// OldestURL is the archive URL of the earliest snapshot, empty when none.
	OldestURL string `json:"oldestUrl,omitempty"`
	// Timestamp is when the earliest snapshot was captured; zero when none.
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// AgeResult is the final, externally visible artifact of a resolution.
// It is constructed once and then only read. Partial results are valid:
// either AgeDays or OldestArchiveURL (or both) may be empty.
type AgeResult struct {
	// Domain is the normalized domain the result refers to.
	Domain string `json:"domain"`
	// AgeDays is the whole-day difference between now and the registration
	// creation date. Nil when the creation date could not be determined or
	// lies in the future relative to the local clock.
	AgeDays *int `json:"ageDays,omitempty"`
	// OldestArchiveURL is the earliest Wayback Machine snapshot URL, empty
	// when the domain was never archived or the archive was unreachable.
	OldestArchiveURL string `json:"oldestArchiveUrl,omitempty"`

	// Whois carries the underlying WHOIS record for diagnostic rendering.
	Whois WhoisRecord `json:"whois"`
	// Wayback carries the underlying snapshot info for diagnostic rendering.
	Wayback WaybackSnapshot `json:"wayback"`

	// WhoisErr records why the WHOIS lookup produced nothing, empty on success.
	WhoisErr string `json:"whoisError,omitempty"`
	// WaybackErr records why the archive lookup produced nothing, empty on success.
	WaybackErr string `json:"waybackError,omitempty"`
}
