// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request scheme is resolved.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto to be
// considered; only enable it behind a proxy that overwrites the header.
type SchemePolicy struct {
	TrustForwardedProto bool
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) matches(other origin) bool {
	if o.host == "" || o.host != other.host {
		return false
	}
	if o.scheme != other.scheme {
		return false
	}
	return o.port != "" && o.port == other.port
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return requestScheme(r, policy) == "https"
}

// HasSameOriginProof reports whether the Origin header, or the Referer when
// Origin is absent, names the same scheme, host, and port as the request.
func HasSameOriginProof(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	self := requestOrigin(r, policy)
	if self.host == "" {
		return false
	}
	for _, header := range []string{"Origin", "Referer"} {
		raw := strings.TrimSpace(r.Header.Get(header))
		if raw == "" {
			continue
		}
		claimed, ok := parseOrigin(raw)
		return ok && claimed.matches(self)
	}
	return false
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	o := origin{
		scheme: strings.ToLower(strings.TrimSpace(parsed.Scheme)),
		host:   strings.ToLower(strings.TrimSpace(parsed.Hostname())),
		port:   strings.TrimSpace(parsed.Port()),
	}
	if o.scheme == "" || o.host == "" {
		return origin{}, false
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o, true
}

func requestOrigin(r *http.Request, policy SchemePolicy) origin {
	o := origin{scheme: requestScheme(r, policy)}
	o.host, o.port = splitHost(r.Host)
	if o.host == "" && r.URL != nil {
		o.host, o.port = splitHost(r.URL.Host)
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o
}

func requestScheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(r.URL.Scheme); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
