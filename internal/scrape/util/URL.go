package util

import (
	"net/url"
	"strings"
)

// ResolveURL resolves href against base. Blank or unparsable hrefs yield base itself.
func ResolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return base
	}
	b, err := url.Parse(base)
	if err != nil {
		return base
	}
	ref, err := url.Parse(href)
	if err != nil {
		return base
	}
	return b.ResolveReference(ref).String()
}

// JoinPath appends a site path to base, tolerating duplicate or missing slashes.
func JoinPath(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
