// Package ingress resolves the URL prefix imposed by a reverse proxy
// fronting the TwinSync Spot backend.
//
// When the backend runs as a Home Assistant add-on, all traffic is routed
// through the supervisor's ingress proxy and every request path must carry
// a prefix of the form /api/hassio_ingress/<token>. The token is only known
// at runtime, so the prefix is resolved once at startup and treated as
// immutable for the life of the process.
package ingress

import (
	"regexp"
	"strings"
)

// Ingress routes have a fixed two-segment shape with an opaque token.
var ingressPattern = regexp.MustCompile(`^(/api/hassio_ingress/[^/]+)(?:/|$)`)

// Resolve returns the path prefix that must precede every API call.
//
// Priority order:
//  1. An externally injected value (add-on launcher, config file, env) is
//     returned verbatim when non-empty.
//  2. Otherwise, if urlPath matches the ingress proxy shape, the matched
//     two-segment prefix is returned.
//  3. Otherwise the empty string: direct, unproxied access.
func Resolve(injected, urlPath string) string {
	if v := strings.TrimSpace(injected); v != "" {
		return v
	}
	if m := ingressPattern.FindStringSubmatch(urlPath); m != nil {
		return m[1]
	}
	return ""
}
