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

import "encoding/json"

// Components holds the syntactic parts of a URI reference as defined by
// RFC 3986, Section 3. Every part except the path is optional; the
// accessors return a boolean reporting presence, which is distinct from
// emptiness. In particular the host is present and empty for an input
// with an empty authority ("//"), and absent when no authority marker
// occurred at all.
//
// A Components value is produced by exactly one parsing strategy, is
// never mutated after construction, and is comparable with ==. Each
// part is stored exactly as it appeared in the input; percent-encoded
// octets are left untouched.
type Components struct {
	scheme   string
	user     string
	pass     string
	host     string
	path     string
	query    string
	fragment string
	port     uint16

	hasScheme   bool
	hasUser     bool
	hasPass     bool
	hasHost     bool
	hasPort     bool
	hasQuery    bool
	hasFragment bool
}

// Scheme returns the scheme component, without the trailing colon, and
// a boolean indicating whether it was present.
func (c Components) Scheme() (string, bool) {
	return c.scheme, c.hasScheme
}

// User returns the part of the user-info before the first ':' and a
// boolean indicating whether user-info was present. The value keeps
// its percent-encoding.
func (c Components) User() (string, bool) {
	return c.user, c.hasUser
}

// Pass returns the part of the user-info after the first ':' and a
// boolean indicating whether it was present.
func (c Components) Pass() (string, bool) {
	return c.pass, c.hasPass
}

// Host returns the host component and a boolean indicating whether an
// authority was present. The host is a bracketed IP-literal or a
// registered name, and is the empty string for an empty authority.
func (c Components) Host() (string, bool) {
	return c.host, c.hasHost
}

// Port returns the port number and a boolean indicating whether digits
// followed the host's colon. An absent port is distinct from any
// numeric value, including zero.
func (c Components) Port() (uint16, bool) {
	return c.port, c.hasPort
}

// Path returns the path component. A path is always present, though it
// may be the empty string.
func (c Components) Path() string {
	return c.path
}

// Query returns the text between '?' and '#', excluding the
// delimiters, and a boolean indicating whether it was present.
func (c Components) Query() (string, bool) {
	return c.query, c.hasQuery
}

// Fragment returns the text after '#', excluding the delimiter, and a
// boolean indicating whether it was present.
func (c Components) Fragment() (string, bool) {
	return c.fragment, c.hasFragment
}

// jsonComponents is the wire shape of a Components value: absent parts
// encode as null, the path always as a string.
type jsonComponents struct {
	Scheme   *string `json:"scheme"`
	User     *string `json:"user"`
	Pass     *string `json:"pass"`
	Host     *string `json:"host"`
	Port     *uint16 `json:"port"`
	Path     string  `json:"path"`
	Query    *string `json:"query"`
	Fragment *string `json:"fragment"`
}

// MarshalJSON implements the json.Marshaler interface. Absent parts are
// encoded as JSON null so that presence survives the round trip to
// consumers that need the distinction.
func (c Components) MarshalJSON() ([]byte, error) {
	jc := jsonComponents{
		Scheme:   optString(c.scheme, c.hasScheme),
		User:     optString(c.user, c.hasUser),
		Pass:     optString(c.pass, c.hasPass),
		Host:     optString(c.host, c.hasHost),
		Path:     c.path,
		Query:    optString(c.query, c.hasQuery),
		Fragment: optString(c.fragment, c.hasFragment),
	}
	if c.hasPort {
		port := c.port
		jc.Port = &port
	}
	return json.Marshal(jc)
}

func optString(s string, present bool) *string {
	if !present {
		return nil
	}
	return &s
}
