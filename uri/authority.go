/*
Copyright 2026 Uriparse Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"net"
	"regexp"
	"strconv"
	"strings"
)

var (
	// registeredNameRegexp matches a registered name: dot-separated
	// labels of unreserved characters (without the dot, which is the
	// separator), sub-delims, and percent-encoded triplets, with an
	// optional trailing dot.
	registeredNameRegexp = regexp.MustCompile(
		`(?i)^(?:(?:[a-z0-9_~\-!$&'()*+,;=]|%[0-9a-f]{2})*\.)*(?:[a-z0-9_~\-!$&'()*+,;=]|%[0-9a-f]{2})*\.?$`)

	// ipvFutureRegexp matches the RFC 3986 IPvFuture production:
	// "v" 1*HEXDIG "." 1*( unreserved / sub-delims ). The version is
	// captured so that the literals "4" and "6" can be refused.
	ipvFutureRegexp = regexp.MustCompile(`(?i)^v([0-9a-f]+)\.[a-z0-9\-._~!$&'()*+,;=]+$`)
)

// zoneForbiddenChars are the characters a percent-decoded zone
// identifier must not contain: the RFC 3986 gen-delims and space.
const zoneForbiddenChars = ":/?#[]@ "

// parseAuthorityForm parses the text after the "//" marker. It works
// right to left: fragment, query, then path are split off, and what
// remains is the authority, decomposed into user-info, host, and port.
// The caller may overlay a scheme on the result afterward.
func (p *Parser) parseAuthorityForm(s string) (Components, error) {
	var c Components

	rest := splitQueryAndFragment(s, &c)

	authority := rest
	if before, after, ok := strings.Cut(rest, "/"); ok {
		authority = before
		c.path = "/" + after
	}

	c.hasHost = true
	if authority == "" {
		return c, nil
	}

	hostport := authority
	if userinfo, after, ok := strings.Cut(authority, "@"); ok {
		// The first '@' wins as the split point; anything after it,
		// further '@' signs included, belongs to host:port.
		hostport = after
		c.hasUser = true
		if user, pass, ok := strings.Cut(userinfo, ":"); ok {
			c.user = user
			c.pass, c.hasPass = pass, true
		} else {
			c.user = userinfo
		}
	}

	host, port, err := splitHostPort(hostport)
	if err != nil {
		return Components{}, err
	}
	if err := p.checkHost(host); err != nil {
		return Components{}, err
	}
	c.host = host
	if c.port, c.hasPort, err = filterPort(port); err != nil {
		return Components{}, err
	}
	return c, nil
}

// splitHostPort separates a host token from its optional port text.
// Tokens without a '[' split at the first ':'. Bracketed tokens must
// close the ']' immediately before end-of-string or a ':'; the port
// text is whatever follows that colon.
func splitHostPort(s string) (host, port string, err error) {
	if !strings.Contains(s, "[") {
		host, port, _ = strings.Cut(s, ":")
		return host, port, nil
	}

	end := strings.Index(s, "]")
	if end < 0 {
		return "", "", newKindError(ErrInvalidHostname, s)
	}
	next := end + 1
	if next < len(s) && s[next] != ':' {
		return "", "", newKindError(ErrInvalidHostname, s)
	}
	host = s[:next]
	if next < len(s) {
		port = s[next+1:]
	}
	return host, port, nil
}

// filterPort validates the port text following the host's colon. Empty
// text means no digits followed the colon, which is an absent port.
// Range policy beyond the uint16 representation is left to callers.
func filterPort(s string) (uint16, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	for _, r := range s {
		if !isASCIIDigit(r) {
			return 0, false, newKindError(ErrInvalidPort, s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false, newKindError(ErrInvalidPort, s)
	}
	return uint16(n), true, nil
}

// checkHost validates a host token, returning nil for a valid host and
// the failure kind otherwise. A host is valid when it is empty, an
// IP-literal, or a registered name.
func (p *Parser) checkHost(host string) error {
	if host == "" || isIPLiteral(host) {
		return nil
	}
	return p.checkRegisteredName(host)
}

// checkRegisteredName validates a registered name, first against the
// ASCII grammar, then, for names carrying non-ASCII bytes, through the
// IDN capability.
func (p *Parser) checkRegisteredName(host string) error {
	if registeredNameRegexp.MatchString(host) {
		return nil
	}
	if !containsNonPrintableASCII(host) {
		return newKindError(ErrInvalidHost, host)
	}
	if p.idn == nil {
		return newKindError(ErrMissingIdnSupport, host)
	}
	if _, err := p.idn.ToASCII(host); err != nil {
		return newKindError(ErrInvalidHost, host)
	}
	return nil
}

// isIPLiteral reports whether host is a valid bracketed IP-literal:
// an IPv6 address, an IPvFuture literal, or an IPv6 address with a
// zone identifier.
func isIPLiteral(host string) bool {
	if len(host) < 2 || host[0] != '[' || host[len(host)-1] != ']' {
		return false
	}
	ip := host[1 : len(host)-1]
	return isIPv6Addr(ip) || isIPvFuture(ip) || hasValidZoneID(ip)
}

// isIPv6Addr reports whether s is a textual IPv6 address. The colon
// requirement rules out dotted-quad IPv4, which is not a valid
// IP-literal interior.
func isIPv6Addr(s string) bool {
	return strings.Contains(s, ":") && net.ParseIP(s) != nil
}

// isIPvFuture reports whether s matches the IPvFuture grammar with a
// version that is not literally "4" or "6".
func isIPvFuture(s string) bool {
	m := ipvFutureRegexp.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return m[1] != "4" && m[1] != "6"
}

// hasValidZoneID reports whether s is an "address%zone" interior. Zone
// identifiers are only permitted on link-local addresses, so the
// address part must be a valid IPv6 address inside fe80::/10, and the
// percent-decoded zone must contain no gen-delim or space.
func hasValidZoneID(s string) bool {
	sep := strings.Index(s, "%")
	if sep < 0 {
		return false
	}
	if strings.ContainsAny(percentDecode(s[sep:]), zoneForbiddenChars) {
		return false
	}

	addr := s[:sep]
	if !isIPv6Addr(addr) {
		return false
	}
	b := net.ParseIP(addr).To16()
	// First 10 bits of fe80::/10.
	return b[0] == 0xfe && b[1]&0xc0 == 0x80
}
