package resolver_test

import (
	"context"
	"testing"
	"time"

	"domainage/internal/resolver"
	"domainage/pkg/derrors"
	"domainage/pkg/domain"
	"domainage/pkg/logger"
	"domainage/pkg/whois"

	mockwayback "domainage/pkg/wayback/mock"
	mockwhois "domainage/pkg/whois/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment, false)
	m.Run()
}

// fixedNow is the injected clock for deterministic age computation.
var fixedNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

const exampleWhois = "Domain Name: EXAMPLE.COM\n" +
	"Registrar: RESERVED-Internet Assigned Numbers Authority\n" +
	"Creation Date: 1995-08-14T04:00:00Z\n"

func newTestResolver(t *testing.T) (*mockwhois.MockClient, *mockwayback.MockClient, resolver.Resolver) {
	t.Helper()

	ctrl := gomock.NewController(t)
	wc := mockwhois.NewMockClient(ctrl)
	ac := mockwayback.NewMockClient(ctrl)
	r := resolver.New(wc, ac, resolver.Options{
		LookupTimeout: time.Second,
		Now:           func() time.Time { return fixedNow },
	})

	return wc, ac, r
}

func TestResolver_Resolve_fullResult(t *testing.T) {
	wc, ac, r := newTestResolver(t)

	archiveURL := "http://web.archive.org/web/19971010112345/http://example.com/"
	wc.EXPECT().Lookup(gomock.Any(), "example.com").Return(whois.Response{Raw: exampleWhois}, nil)
	ac.EXPECT().EarliestSnapshot(gomock.Any(), "example.com").Return(domain.WaybackSnapshot{
		Available: true,
		OldestURL: archiveURL,
		Timestamp: time.Date(1997, 10, 10, 11, 23, 45, 0, time.UTC),
	}, nil)

	res, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", res.Domain)

	created := time.Date(1995, 8, 14, 4, 0, 0, 0, time.UTC)
	wantAge := int(fixedNow.Sub(created).Hours() / 24)
	require.NotNil(t, res.AgeDays)
	require.Equal(t, wantAge, *res.AgeDays)
	require.GreaterOrEqual(t, *res.AgeDays, 0)

	require.Equal(t, archiveURL, res.OldestArchiveURL)
	require.Empty(t, res.WhoisErr)
	require.Empty(t, res.WaybackErr)
}

func TestResolver_Resolve_privacyShieldedAndUnarchived(t *testing.T) {
	wc, ac, r := newTestResolver(t)

	wc.EXPECT().Lookup(gomock.Any(), "privacyprotected.test").Return(whois.Response{
		Raw: "Domain Name: PRIVACYPROTECTED.TEST\nRegistrant: REDACTED FOR PRIVACY\n",
	}, nil)
	ac.EXPECT().EarliestSnapshot(gomock.Any(), "privacyprotected.test").
		Return(domain.WaybackSnapshot{Available: false}, nil)

	res, err := r.Resolve(context.Background(), "privacyprotected.test")
	require.NoError(t, err, "missing creation date and missing snapshot are normal outcomes")
	require.Nil(t, res.AgeDays)
	require.Empty(t, res.OldestArchiveURL)
	require.False(t, res.Wayback.Available)
	require.Empty(t, res.WhoisErr)
	require.Empty(t, res.WaybackErr)
}

func TestResolver_Resolve_invalidDomainSkipsLookups(t *testing.T) {
	// no EXPECT calls: gomock fails the test if any lookup is attempted
	_, _, r := newTestResolver(t)

	res, err := r.Resolve(context.Background(), "not a domain")
	require.Error(t, err)
	require.ErrorIs(t, err, derrors.ErrInvalidDomain)
	require.Nil(t, res, "no partial result on invalid input")
}

func TestResolver_Resolve_whoisFailureDoesNotSuppressWayback(t *testing.T) {
	wc, ac, r := newTestResolver(t)

	archiveURL := "http://web.archive.org/web/20050101000000/http://example.org/"
	wc.EXPECT().Lookup(gomock.Any(), "example.org").
		Return(whois.Response{}, derrors.With(derrors.ErrUnavailable, "whois server unreachable"))
	ac.EXPECT().EarliestSnapshot(gomock.Any(), "example.org").
		Return(domain.WaybackSnapshot{Available: true, OldestURL: archiveURL}, nil)

	res, err := r.Resolve(context.Background(), "example.org")
	require.NoError(t, err, "lookup failure must not abort the resolution")
	require.Nil(t, res.AgeDays)
	require.NotEmpty(t, res.WhoisErr)
	require.Equal(t, archiveURL, res.OldestArchiveURL)
}

func TestResolver_Resolve_waybackFailureDoesNotSuppressWhois(t *testing.T) {
	wc, ac, r := newTestResolver(t)

	wc.EXPECT().Lookup(gomock.Any(), "example.com").Return(whois.Response{Raw: exampleWhois}, nil)
	ac.EXPECT().EarliestSnapshot(gomock.Any(), "example.com").
		Return(domain.WaybackSnapshot{}, derrors.With(derrors.ErrTimeout, "wayback timed out"))

	res, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.NotNil(t, res.AgeDays)
	require.Empty(t, res.OldestArchiveURL)
	require.NotEmpty(t, res.WaybackErr)
}

func TestResolver_Resolve_futureCreationDateReportsUnknownAge(t *testing.T) {
	wc, ac, r := newTestResolver(t)

	wc.EXPECT().Lookup(gomock.Any(), "example.com").Return(whois.Response{
		Raw: "Creation Date: 2031-01-01T00:00:00Z\n",
	}, nil)
	ac.EXPECT().EarliestSnapshot(gomock.Any(), "example.com").
		Return(domain.WaybackSnapshot{Available: false}, nil)

	res, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.Nil(t, res.AgeDays, "future creation date must not yield a negative age")
	require.NotNil(t, res.Whois.CreationDate, "the parsed date itself is still reported")
}

func TestResolver_Resolve_normalizesInputBeforeLookups(t *testing.T) {
	wc, ac, r := newTestResolver(t)

	wc.EXPECT().Lookup(gomock.Any(), "example.com").Return(whois.Response{Raw: exampleWhois}, nil)
	ac.EXPECT().EarliestSnapshot(gomock.Any(), "example.com").
		Return(domain.WaybackSnapshot{Available: false}, nil)

	res, err := r.Resolve(context.Background(), "https://Example.COM/landing?x=1")
	require.NoError(t, err)
	require.Equal(t, "example.com", res.Domain)
}

func TestResolver_Resolve_idempotent(t *testing.T) {
	wc, ac, r := newTestResolver(t)

	snapshot := domain.WaybackSnapshot{
		Available: true,
		OldestURL: "http://web.archive.org/web/19971010112345/http://example.com/",
		Timestamp: time.Date(1997, 10, 10, 11, 23, 45, 0, time.UTC),
	}
	wc.EXPECT().Lookup(gomock.Any(), "example.com").Return(whois.Response{Raw: exampleWhois}, nil).Times(2)
	ac.EXPECT().EarliestSnapshot(gomock.Any(), "example.com").Return(snapshot, nil).Times(2)

	first, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, first, second, "same inputs and upstream responses must yield identical results")
}
