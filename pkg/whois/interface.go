// Package whois defines the abstraction for WHOIS lookups: given a domain
// name, an implementation returns the raw registrar response. Parsing of the
// free-text response is deliberately left to the caller.
package whois

import (
	"context"
)

// Response is the raw outcome of a WHOIS query.
type Response struct {
	// Raw is the unparsed registrar response text.
	Raw string
	// Server is the WHOIS server that answered, when the implementation
	// knows it (empty when the transport picked the server itself).
	Server string
}

// Client is the abstraction for WHOIS transports. Implementations resolve
// the responsible registry/registrar server and return its raw answer.
//
//go:generate mockgen -package mockwhois -source=interface.go -destination=mock/mockwhois.go *
type Client interface {
	// Lookup queries WHOIS data for the given domain. It returns a
	// derrors.ErrTimeout or derrors.ErrUnavailable kinded error when the
	// upstream cannot be reached in time.
	Lookup(ctx context.Context, domain string) (Response, error)
}
