// Package domain contains the core entities produced and consumed during a
// domain-age resolution. These types represent the business concepts (WHOIS
// records, archive snapshots, the final age result) and are intentionally free
// of infrastructure concerns so they can be shared across packages.
package domain
