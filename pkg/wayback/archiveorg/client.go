// Package archiveorg provides a wayback.Client implementation backed by the
// public archive.org availability API.
package archiveorg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"domainage/pkg/derrors"
	"domainage/pkg/domain"
	"domainage/pkg/wayback"
)

const (
	// DefaultBaseURL is the archive.org API root.
	DefaultBaseURL = "https://archive.org"

	// earliestBias is passed as the availability API's timestamp parameter.
	// The API returns the snapshot *closest* to that timestamp, so asking
	// for the epoch yields the oldest capture.
	earliestBias = "19700101"

	// snapshotTimeFormat is the 14-digit capture timestamp used across
	// Wayback APIs (YYYYMMDDhhmmss, UTC).
	snapshotTimeFormat = "20060102150405"
)

// Client talks to the archive.org availability API and fulfills the
// wayback.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to archive.org
	baseURL    string       // baseURL is the API root, overridable for tests
	userAgent  string       // userAgent identifies the tool to the archive
}

// Options configure the archive.org client. Zero values fall back to
// defaults.
type Options struct {
	// BaseURL overrides the archive.org API root.
	BaseURL string
	// UserAgent is sent with every request; archive.org asks automated
	// clients to identify themselves.
	UserAgent string
}

// New constructs a Client that uses the provided http.Client to query the
// availability API.
func New(httpClient *http.Client, opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  opts.UserAgent,
	}
}

// EarliestSnapshot asks the availability API for the capture closest to the
// epoch, i.e. the oldest one. A domain with no captures returns
// Available=false with a nil error.
//
// https://archive.org/help/wayback_api.php
func (c *Client) EarliestSnapshot(ctx context.Context, host string) (domain.WaybackSnapshot, error) {
	reqURL := fmt.Sprintf("%s/wayback/available?url=%s&timestamp=%s",
		c.baseURL, url.QueryEscape(host), earliestBias)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.WaybackSnapshot{}, fmt.Errorf("could not create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.WaybackSnapshot{}, derrors.Wrap(derrors.ErrTimeout, err, "wayback lookup timed out")
		}

		return domain.WaybackSnapshot{}, derrors.Wrap(derrors.ErrUnavailable, err, "could not reach wayback machine")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.WaybackSnapshot{}, derrors.Wrap(derrors.ErrUnavailable, err, "could not read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.WaybackSnapshot{},
			derrors.With(derrors.ErrUnavailable, "availability API returned %d: %s",
				resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var availResp struct {
		ArchivedSnapshots struct {
			Closest struct {
				Available bool   `json:"available"`
				URL       string `json:"url"`
				Timestamp string `json:"timestamp"`
				Status    string `json:"status"`
			} `json:"closest"`
		} `json:"archived_snapshots"`
	}
	if err := json.Unmarshal(b, &availResp); err != nil {
		return domain.WaybackSnapshot{}, derrors.Wrap(derrors.ErrUnavailable, err, "could not decode response")
	}

	closest := availResp.ArchivedSnapshots.Closest
	if !closest.Available || closest.URL == "" {
		return domain.WaybackSnapshot{Available: false}, nil
	}

	snapshot := domain.WaybackSnapshot{
		Available: true,
		OldestURL: closest.URL,
	}
	// A malformed capture timestamp is not worth failing the lookup over;
	// the URL is the part callers act on.
	if ts, err := time.Parse(snapshotTimeFormat, closest.Timestamp); err == nil {
		snapshot.Timestamp = ts
	}

	return snapshot, nil
}

// Ensure Client conforms to the wayback.Client interface at compile time.
var _ wayback.Client = (*Client)(nil)
