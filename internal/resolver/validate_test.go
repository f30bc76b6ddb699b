package resolver_test

import (
	"strings"
	"testing"

	"domainage/internal/resolver"
)

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{
			name: "plain domain",
			in:   "example.com",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "lowercase host",
			in:   "Example.COM",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "strip scheme and path",
			in:   "https://example.com/some/path",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "strip trailing slash",
			in:   "example.com/",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "strip trailing dot",
			in:   "example.com.",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "subdomain kept",
			in:   "sub.example.co.uk",
			out:  "sub.example.co.uk",
			ok:   true,
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  example.com  ",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "hyphenated labels",
			in:   "my-site.example-registry.io",
			out:  "my-site.example-registry.io",
			ok:   true,
		},
		{
			name: "empty input",
			in:   "",
			ok:   false,
		},
		{
			name: "inner whitespace",
			in:   "not a domain",
			ok:   false,
		},
		{
			name: "no dot",
			in:   "localhost",
			ok:   false,
		},
		{
			name: "empty label",
			in:   "example..com",
			ok:   false,
		},
		{
			name: "label starts with hyphen",
			in:   "-bad.example.com",
			ok:   false,
		},
		{
			name: "label ends with hyphen",
			in:   "bad-.example.com",
			ok:   false,
		},
		{
			name: "control character",
			in:   "exam\tple.com",
			ok:   false,
		},
		{
			name: "underscore rejected",
			in:   "bad_host.example.com",
			ok:   false,
		},
		{
			name: "label too long",
			in:   strings.Repeat("a", 64) + ".com",
			ok:   false,
		},
		{
			name: "name too long",
			in:   strings.Repeat("abcdefgh.", 30) + "com",
			ok:   false,
		},
	}

	for _, tc := range cases {
		got, err := resolver.NormalizeDomain(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tc.name, err)
			}
			if got != tc.out {
				t.Errorf("%s: got %q, want %q", tc.name, got, tc.out)
			}
		} else if err == nil {
			t.Errorf("%s: expected error, got none (result %q)", tc.name, got)
		}
	}
}
