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
	"regexp"
	"strings"
)

// schemeRegexp is the scheme grammar applied by IsScheme: a leading
// letter followed by letters, '+', '.', or '-'.
var schemeRegexp = regexp.MustCompile(`(?i)^[a-z][a-z+.\-]*$`)

// IsScheme reports whether scheme satisfies the scheme grammar. The
// empty string is accepted.
//
// Note that the grammar is narrower than RFC 3986, Section 3.1: digits
// are not permitted after the first character. This matches the
// historical behavior of the reference grammar and is kept on purpose;
// a candidate rejected here is re-parsed as a plain path by Parse.
func IsScheme(scheme string) bool {
	return scheme == "" || schemeRegexp.MatchString(scheme)
}

// simpleURIs maps a small closed set of trivial inputs to pre-built
// component sets, short-circuiting the general rules. The map is
// assigned once and never mutated.
var simpleURIs = map[string]Components{
	"":   {},
	"#":  {hasFragment: true},
	"?":  {hasQuery: true},
	"?#": {hasQuery: true, hasFragment: true},
	"/":  {path: "/"},
	"//": {hasHost: true},
}

// parse classifies the input by cheap structural checks and routes it
// to exactly one parsing strategy. The chain is a priority order:
// a string containing both ':' and '/' must not be mistaken for a pure
// path before the colon is confirmed to belong to a valid scheme.
func (p *Parser) parse(uri string) (Components, error) {
	if c, ok := simpleURIs[uri]; ok {
		return c, nil
	}

	if containsControlBytes(uri) {
		return Components{}, newKindError(ErrInvalidCharacters, uri)
	}

	switch {
	case uri[0] == '#':
		return Components{fragment: uri[1:], hasFragment: true}, nil
	case uri[0] == '?':
		var c Components
		c.query, c.hasQuery = uri[1:], true
		if query, fragment, ok := strings.Cut(c.query, "#"); ok {
			c.query = query
			c.fragment, c.hasFragment = fragment, true
		}
		return c, nil
	case strings.HasPrefix(uri, "//"):
		return p.parseAuthorityForm(uri[2:])
	case uri[0] == '/' || !strings.Contains(uri, ":"):
		return parsePathForm(uri)
	default:
		return p.parseFallback(uri)
	}
}

// parsePathForm parses a URI reference that carries a path but no
// authority: "path?query#fragment". A ':' occurring before the first
// '/' would be ambiguous with a scheme delimiter and is rejected.
func parsePathForm(uri string) (Components, error) {
	if colon := strings.Index(uri, ":"); colon >= 0 {
		if slash := strings.Index(uri, "/"); slash < 0 || slash > colon {
			return Components{}, newKindError(ErrInvalidPath, uri)
		}
	}

	var c Components
	c.path = splitQueryAndFragment(uri, &c)
	return c, nil
}

// parseFallback handles inputs containing a colon that no earlier rule
// resolved. The text before the first colon is a scheme candidate; if
// it fails the scheme grammar the whole input is re-parsed as a
// no-scheme path.
func (p *Parser) parseFallback(uri string) (Components, error) {
	scheme, remainder, _ := strings.Cut(uri, ":")
	if scheme == "" {
		return Components{}, newKindError(ErrInvalidScheme, uri)
	}
	if !IsScheme(scheme) {
		return parsePathForm(uri)
	}

	c := Components{scheme: scheme, hasScheme: true}
	switch {
	case remainder == "":
		return c, nil
	case remainder == "//":
		c.hasHost = true
		return c, nil
	}

	if rest, ok := strings.CutPrefix(remainder, "//"); ok {
		ac, err := p.parseAuthorityForm(rest)
		if err != nil {
			return Components{}, err
		}
		ac.scheme, ac.hasScheme = scheme, true
		return ac, nil
	}

	// The scheme already disambiguated the colon, so the remainder is a
	// plain path-query-fragment without the colon precondition.
	c.path = splitQueryAndFragment(remainder, &c)
	return c, nil
}

// splitQueryAndFragment splits s right-to-left: fragment at the first
// '#', then query at the first '?'. It records the optional parts on c
// and returns what remains.
func splitQueryAndFragment(s string, c *Components) string {
	if rest, fragment, ok := strings.Cut(s, "#"); ok {
		c.fragment, c.hasFragment = fragment, true
		s = rest
	}
	if rest, query, ok := strings.Cut(s, "?"); ok {
		c.query, c.hasQuery = query, true
		s = rest
	}
	return s
}
