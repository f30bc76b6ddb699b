// Package likexianwhois provides a whois.Client implementation backed by the
// github.com/likexian/whois library, which handles registry server selection
// and referral following over port 43.
package likexianwhois

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"domainage/pkg/derrors"
	"domainage/pkg/whois"

	lxwhois "github.com/likexian/whois"
)

// Querier is the seam between this client and the underlying library,
// satisfied by *lxwhois.Client. Tests substitute a fake.
type Querier interface {
	Whois(domain string, servers ...string) (string, error)
}

// Client performs WHOIS lookups through the likexian library and fulfills the
// whois.Client interface. It is safe for concurrent use.
type Client struct {
	q      Querier // q issues the actual port-43 queries
	server string  // server optionally pins a specific WHOIS server
}

// Options configure the WHOIS transport.
type Options struct {
	// Timeout bounds a single port-43 exchange inside the library. The
	// caller's context deadline applies on top of it.
	Timeout time.Duration
	// Server optionally overrides automatic server selection, e.g. for
	// registries whose server the IANA referral chain misses.
	Server string
}

// New constructs a Client with its own library-backed transport.
func New(opts Options) *Client {
	q := lxwhois.NewClient()
	if opts.Timeout > 0 {
		q.SetTimeout(opts.Timeout)
	}

	return &Client{q: q, server: opts.Server}
}

// NewWithQuerier constructs a Client on top of a caller-provided querier.
// Used by tests; production code should use New.
func NewWithQuerier(q Querier, server string) *Client {
	return &Client{q: q, server: server}
}

// Lookup queries WHOIS data for the domain. The library call itself does not
// take a context, so it runs in a goroutine and the result is abandoned if
// the context expires first.
func (c *Client) Lookup(ctx context.Context, domain string) (whois.Response, error) {
	type queryResult struct {
		raw string
		err error
	}

	resCh := make(chan queryResult, 1)
	go func() {
		var raw string
		var err error
		if c.server != "" {
			raw, err = c.q.Whois(domain, c.server)
		} else {
			raw, err = c.q.Whois(domain)
		}
		resCh <- queryResult{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return whois.Response{}, derrors.Wrap(derrors.ErrTimeout, ctx.Err(), "whois lookup timed out")
		}

		return whois.Response{}, derrors.Wrap(derrors.ErrUnavailable, ctx.Err(), "whois lookup canceled")
	case res := <-resCh:
		if res.err != nil {
			var netErr net.Error
			if errors.As(res.err, &netErr) && netErr.Timeout() {
				return whois.Response{}, derrors.Wrap(derrors.ErrTimeout, res.err, "whois server did not answer")
			}

			return whois.Response{}, derrors.Wrap(derrors.ErrUnavailable, res.err, "whois lookup failed")
		}
		if strings.TrimSpace(res.raw) == "" {
			return whois.Response{}, derrors.With(derrors.ErrNotFound, "empty whois response for %q", domain)
		}

		return whois.Response{Raw: res.raw, Server: c.server}, nil
	}
}

// Ensure Client conforms to the whois.Client interface at compile time.
var _ whois.Client = (*Client)(nil)
