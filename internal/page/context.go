package page

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

/*
Responsibilities
- Derive the canonical matching token for a page once per extraction call
- Carry the base URL every resolver and scorer anchors against

Token Semantics
- The token is the lower-cased second-level domain label of the page's host
  (https://shop.example.co.uk -> "example")
- Subdomains and public suffixes (co.uk, com.au, ...) are stripped
- A host that cannot be derived yields an empty token; domain-match bonuses
  then become no-ops instead of errors
*/

// PageContext is immutable and built once per extraction call.
type PageContext struct {
	domainToken string
	baseURL     url.URL
}

func NewPageContext(baseURL url.URL) PageContext {
	return PageContext{
		domainToken: deriveDomainToken(baseURL.Hostname()),
		baseURL:     baseURL,
	}
}

func (p PageContext) DomainToken() string {
	return p.domainToken
}

func (p PageContext) BaseURL() url.URL {
	return p.baseURL
}

func (p PageContext) BaseURLString() string {
	return p.baseURL.String()
}

// deriveDomainToken reduces a hostname to its second-level domain label.
// The public suffix list handles multi-label suffixes such as co.uk, so
// "shop.example.co.uk" reduces to "example" rather than "co".
func deriveDomainToken(host string) string {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return ""
	}

	// IP hosts have no registrable domain.
	if net.ParseIP(host) != nil {
		return ""
	}

	etldPlusOne, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}

	suffix, _ := publicsuffix.PublicSuffix(etldPlusOne)
	token := strings.TrimSuffix(etldPlusOne, suffix)
	token = strings.TrimSuffix(token, ".")
	if token == "" {
		return ""
	}
	return token
}
