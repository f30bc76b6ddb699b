package resolver

import (
	"context"

	"domainage/pkg/domain"
)

//go:generate mockgen -package mockresolver -source=interface.go -destination=mock/mockresolver.go *
type Resolver interface {
	// Resolve produces a best-effort age result for the domain. It fails
	// only on invalid input; upstream failures degrade individual fields.
	Resolve(ctx context.Context, rawDomain string) (*domain.AgeResult, error)
}
