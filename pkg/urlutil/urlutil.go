package urlutil

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
)

// DataURIPrefix marks a self-contained inline image reference.
// References carrying it are never URL-resolved.
const DataURIPrefix = "data:"

// IsDataURI reports whether raw is an inline data reference.
func IsDataURI(raw string) bool {
	return strings.HasPrefix(raw, DataURIPrefix)
}

// ResolveReference normalizes a raw image reference into an absolute,
// percent-escaped locator against the base URL.
//
// Rules, in priority order:
//  1. Inline data references are passed through untouched.
//  2. Protocol-relative references (//host/path) take the base URL's scheme.
//  3. Root-relative and schemeless references resolve against the base URL.
//  4. Already-absolute references are used as-is.
//
// The result is normalized with purell's safe flag set: unsafe characters
// (including spaces) are percent-escaped, scheme and host are lowercased,
// and path/query are preserved with ':' and '/' left unescaped.
func ResolveReference(raw string, base url.URL) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty reference")
	}

	if IsDataURI(raw) {
		return raw, nil
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("unparseable reference %q: %w", raw, err)
	}

	// ResolveReference covers rules 2-4: a protocol-relative reference keeps
	// its own host and inherits base's scheme, a relative one resolves
	// against base's path, and an absolute one is returned unchanged.
	resolved := base.ResolveReference(ref)

	return purell.NormalizeURL(resolved, purell.FlagsSafe), nil
}

// Canonicalize applies a deterministic normalization to a URL, producing a canonical form.
// It maps equivalent URL spellings to a single canonical representation.
//
// The normalization follows these rules:
//   - Scheme and host are lowercased
//   - Path is cleaned (trailing slashes removed, except for root "/")
//   - Fragments are removed
//   - Default ports are omitted (e.g., :80 for http, :443 for https)
//
// Properties:
//   - Pure: no state, no memory
//   - Deterministic: same input always produces same output
//   - Idempotent: Canonicalize(Canonicalize(url)) == Canonicalize(url)
func Canonicalize(sourceUrl url.URL) url.URL {
	// Create a copy to avoid mutating the original
	canonical := sourceUrl

	// Lowercase scheme and host
	canonical.Scheme = lowerASCII(canonical.Scheme)
	canonical.Host = lowerASCII(canonical.Host)

	// Remove default port if present
	if host, port := canonical.Hostname(), canonical.Port(); port != "" {
		if (canonical.Scheme == "http" && port == "80") ||
			(canonical.Scheme == "https" && port == "443") {
			canonical.Host = host
		}
	}

	// Clean the path: remove trailing slashes (except root)
	if len(canonical.Path) > 1 {
		canonical.Path = stripTrailingSlash(canonical.Path)
	}

	// Remove fragment (anchor)
	canonical.Fragment = ""
	canonical.RawFragment = ""

	return canonical
}

// lowerASCII converts ASCII characters to lowercase without allocating.
// This is faster than strings.ToLower for ASCII-only strings.
func lowerASCII(s string) string {
	var needsLower bool
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			needsLower = true
			break
		}
	}
	if !needsLower {
		return s
	}
	b := make([]byte, len(s))
	copy(b, s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// stripTrailingSlash removes trailing slashes from a path.
func stripTrailingSlash(path string) string {
	for len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}
