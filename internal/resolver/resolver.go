package resolver

import (
	"context"
	"sync"
	"time"

	"domainage/internal/config"
	"domainage/internal/metrics"
	"domainage/pkg/domain"
	"domainage/pkg/logger"
	"domainage/pkg/wayback"
	"domainage/pkg/whois"

	"go.uber.org/zap"
)

// Options configure how a resolution is performed.
type Options struct {
	// LookupTimeout is the deadline applied to each upstream lookup
	// individually; a slow WHOIS server must not eat the Wayback budget.
	LookupTimeout time.Duration

	// Now returns the current time used for age computation. Nil means
	// time.Now; tests inject a fixed clock.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LookupTimeout: cfg.Resolver.LookupTimeout,
	}
}

// resolver is the concrete implementation of the Resolver interface. It
// coordinates the two upstream capabilities and assembles the final result.
type resolver struct {
	options Options
	whois   whois.Client
	wayback wayback.Client
}

// New creates a Resolver backed by the provided WHOIS and Wayback clients.
func New(whoisClient whois.Client, waybackClient wayback.Client, options Options) Resolver {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.LookupTimeout <= 0 {
		options.LookupTimeout = 20 * time.Second
	}

	return &resolver{
		options: options,
		whois:   whoisClient,
		wayback: waybackClient,
	}
}

// Resolve validates the input, runs the WHOIS and Wayback lookups
// concurrently, and assembles a best-effort AgeResult. The two lookups are
// decoupled: failure of one never suppresses the other's result. Only a
// malformed domain makes Resolve return an error.
func (r *resolver) Resolve(ctx context.Context, rawDomain string) (*domain.AgeResult, error) {
	name, err := NormalizeDomain(rawDomain)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithFields(ctx, zap.String("domain", name))

	var (
		wg         sync.WaitGroup
		whoisRes   whois.Response
		whoisErr   error
		snapshot   domain.WaybackSnapshot
		waybackErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		whoisRes, whoisErr = r.lookupWhois(ctx, name)
	}()
	go func() {
		defer wg.Done()
		snapshot, waybackErr = r.lookupWayback(ctx, name)
	}()
	wg.Wait()

	res := &domain.AgeResult{Domain: name}
	r.applyWhois(ctx, res, whoisRes, whoisErr)
	r.applyWayback(ctx, res, snapshot, waybackErr)

	return res, nil
}

func (r *resolver) lookupWhois(ctx context.Context, name string) (whois.Response, error) {
	lctx, cancel := context.WithTimeout(ctx, r.options.LookupTimeout)
	defer cancel()

	start := time.Now()
	res, err := r.whois.Lookup(lctx, name)
	metrics.ObserveLookup(metrics.UpstreamWhois, lookupOutcome(err), time.Since(start))

	return res, err
}

func (r *resolver) lookupWayback(ctx context.Context, name string) (domain.WaybackSnapshot, error) {
	lctx, cancel := context.WithTimeout(ctx, r.options.LookupTimeout)
	defer cancel()

	start := time.Now()
	snapshot, err := r.wayback.EarliestSnapshot(lctx, name)
	metrics.ObserveLookup(metrics.UpstreamWayback, lookupOutcome(err), time.Since(start))

	return snapshot, err
}

// applyWhois folds the WHOIS outcome into the result: creation date
// extraction, age computation and degradation notes.
func (r *resolver) applyWhois(ctx context.Context, res *domain.AgeResult, whoisRes whois.Response, err error) {
	if err != nil {
		logger.Warn(ctx, "whois lookup failed", zap.Error(err))
		res.WhoisErr = err.Error()

		return
	}

	res.Whois = domain.WhoisRecord{
		Raw:       whoisRes.Raw,
		Server:    whoisRes.Server,
		Registrar: ExtractRegistrar(whoisRes.Raw),
	}

	created, ok := ExtractCreationDate(whoisRes.Raw)
	if !ok {
		// expected for privacy-shielded domains
		logger.Debug(ctx, "no recognizable creation date in whois response")

		return
	}
	res.Whois.CreationDate = &created

	age, ok := r.ageDays(created)
	if !ok {
		logger.Warn(ctx, "creation date is in the future, reporting age as unknown",
			zap.Time("creationDate", created))

		return
	}
	res.AgeDays = &age

	logger.Info(ctx, "resolved domain age",
		zap.Time("creationDate", created),
		zap.Int("ageDays", age))
}

// applyWayback folds the archive outcome into the result.
func (r *resolver) applyWayback(ctx context.Context, res *domain.AgeResult, snapshot domain.WaybackSnapshot, err error) {
	if err != nil {
		logger.Warn(ctx, "wayback lookup failed", zap.Error(err))
		res.WaybackErr = err.Error()

		return
	}

	res.Wayback = snapshot
	if !snapshot.Available {
		logger.Debug(ctx, "domain has no wayback snapshots")

		return
	}
	res.OldestArchiveURL = snapshot.OldestURL

	logger.Info(ctx, "resolved oldest archive snapshot",
		zap.String("url", snapshot.OldestURL),
		zap.Time("capturedAt", snapshot.Timestamp))
}

// ageDays computes the whole-day difference between now and the creation
// date. A creation date in the future (clock skew or bad registrar data)
// yields ok=false: a negative age is meaningless to the caller and is
// reported as unknown instead.
func (r *resolver) ageDays(created time.Time) (int, bool) {
	now := r.options.Now().UTC()
	if created.After(now) {
		return 0, false
	}

	return int(now.Sub(created).Hours() / 24), true
}

func lookupOutcome(err error) string {
	if err != nil {
		return metrics.OutcomeError
	}

	return metrics.OutcomeOK
}
