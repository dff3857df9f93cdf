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
	"errors"
	"fmt"
)

// The failure kinds produced by Parse. Test for them with errors.Is;
// the error returned by Parse wraps exactly one of these.
var (
	// ErrInvalidCharacters is returned when the input contains raw
	// control bytes (0x00-0x1F or 0x7F).
	ErrInvalidCharacters = errors.New("invalid characters: uri contains control bytes")

	// ErrInvalidHostname is returned for malformed IP-literal bracket
	// syntax: the closing ']' is missing, or is not immediately followed
	// by end-of-string or ':'.
	ErrInvalidHostname = errors.New("invalid hostname: malformed IP-literal delimiters")

	// ErrInvalidHost is returned when a host token fails both the
	// IP-literal and registered-name grammars.
	ErrInvalidHost = errors.New("invalid host")

	// ErrInvalidPort is returned when a port token is non-empty and not
	// representable as a decimal port number.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidPath is returned when a ':' appears before any '/' in a
	// path that carries no scheme, which would be ambiguous with a
	// scheme delimiter.
	ErrInvalidPath = errors.New("invalid path: colon before first slash in a no-scheme path")

	// ErrInvalidScheme is returned when the token before the first ':'
	// is empty.
	ErrInvalidScheme = errors.New("invalid scheme: empty scheme before colon")

	// ErrMissingIdnSupport is returned when a registered name contains
	// non-ASCII bytes but the Parser was built without an IDN
	// capability. It reports an environment gap, not malformed input.
	ErrMissingIdnSupport = errors.New("missing IDN support: cannot validate internationalized host")
)

// kindError attaches the offending token to a failure kind. Unwrap
// exposes the kind so errors.Is works through the ParseError chain.
type kindError struct {
	kind   error
	detail string
}

func (e *kindError) Error() string {
	if e.detail == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%v: %q", e.kind, e.detail)
}

func (e *kindError) Unwrap() error {
	return e.kind
}

// newKindError builds a kindError for the given failure kind and token.
func newKindError(kind error, detail string) *kindError {
	return &kindError{kind: kind, detail: detail}
}
