// Package wayback defines the abstraction for querying a web archive for the
// earliest known snapshot of a domain.
package wayback

import (
	"context"

	"domainage/pkg/domain"
)

// Client is the abstraction for archive lookups.
//
// A domain that was never archived is a normal outcome: implementations
// return a snapshot with Available=false and a nil error, reserving errors
// for transport failures.
//
//go:generate mockgen -package mockwayback -source=interface.go -destination=mock/mockwayback.go *
type Client interface {
	// EarliestSnapshot returns the oldest archived snapshot for the host,
	// or Available=false when none exists.
	EarliestSnapshot(ctx context.Context, host string) (domain.WaybackSnapshot, error)
}
