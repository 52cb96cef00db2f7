// Package sitemeta builds the crawler-facing metadata documents (robots.txt
// and sitemap.xml) from the public site origin.
package sitemeta

import (
	"net/url"
	"strings"
)

// FallbackOrigin is served when no usable origin is configured.
const FallbackOrigin = "https://warehouse-ts.vercel.app"

var localHostnames = map[string]struct{}{
	"localhost": {},
	"127.0.0.1": {},
	"0.0.0.0":   {},
}

// ResolveOrigin returns the origin (scheme://host[:port]) of the first
// candidate that is an absolute URL pointing at a non-local host.
func ResolveOrigin(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}

		parsed, err := url.Parse(strings.TrimSpace(candidate))
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			continue
		}
		if _, local := localHostnames[strings.ToLower(parsed.Hostname())]; local {
			continue
		}

		return strings.ToLower(parsed.Scheme) + "://" + strings.ToLower(parsed.Host)
	}

	return FallbackOrigin
}

func trimOrigin(origin string) string {
	return strings.TrimRight(origin, "/")
}
