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

// Package uri decomposes URI strings into their syntactic components as
// defined by RFC 3986, Section 3, and validates the authority sub-parts
// (host and port) to the extent the grammar requires.
//
// The package exposes three entry points:
//   - Parse: splits a URI reference into a Components value, validating
//     host and port along the way.
//   - IsScheme: reports whether a token satisfies the scheme grammar.
//   - IsHost: reports whether a token is a valid host (empty, IP-literal,
//     or registered name).
//
// Parsing is pure string computation: no I/O, no shared mutable state.
// The compiled grammar patterns are package-wide and read-only, so any
// number of goroutines may parse concurrently without coordination.
//
// Host classification spans IPv4-free IP-literals (IPv6 and IPvFuture,
// with zone identifiers on link-local addresses), ASCII registered
// names, and internationalized registered names. Internationalized
// validation is an injectable capability (see IDNConverter); the default
// is backed by golang.org/x/net/idna.
//
// The package deliberately stops at decomposition. Recomposing a URI
// string, resolving relative references, and normalizing path segments
// are out of scope and belong to higher-level URI types built on top of
// these components.
package uri

import (
	"fmt"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// ParseError is the error type returned by Parse. It records the input
// that failed and wraps the specific failure kind, reachable through
// errors.Is and errors.Unwrap.
type ParseError struct {
	Input string
	Err   error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse URI %q: %v", e.Input, e.Err)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IDNConverter converts an internationalized domain name to its ASCII
// (Punycode) form. A registered name that fails the ASCII grammar and
// contains non-ASCII bytes is considered valid exactly when the
// converter reports no conversion error.
//
// The capability is optional: a Parser built with WithoutIDN has no
// converter and fails such hosts with ErrMissingIdnSupport, signalling
// that the deployment cannot validate the input rather than that the
// input is malformed.
type IDNConverter interface {
	ToASCII(domain string) (string, error)
}

// idnaConverter is the default IDNConverter, backed by the x/net/idna
// lookup profile (UTS #46 with the bidi rule applied).
type idnaConverter struct{}

func (idnaConverter) ToASCII(domain string) (string, error) {
	return idna.Lookup.ToASCII(domain)
}

// Parser parses URI strings into Components. The zero value is not
// usable; construct one with New. A Parser is immutable after
// construction and safe for concurrent use.
type Parser struct {
	idn IDNConverter
}

// Option configures a Parser.
type Option func(*Parser)

// WithIDNConverter replaces the converter used to validate
// internationalized registered names. Passing nil declines the
// capability, like WithoutIDN.
func WithIDNConverter(c IDNConverter) Option {
	return func(p *Parser) {
		p.idn = c
	}
}

// WithoutIDN declines internationalized host validation. Parsing a URI
// whose host fails the ASCII registered-name grammar and contains
// non-ASCII bytes then fails with ErrMissingIdnSupport.
func WithoutIDN() Option {
	return func(p *Parser) {
		p.idn = nil
	}
}

// New creates a Parser. By default internationalized registered names
// are validated with golang.org/x/net/idna.
func New(opts ...Option) *Parser {
	p := &Parser{idn: idnaConverter{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// defaultParser backs the package-level entry points. It is assigned
// once and never mutated.
var defaultParser = New()

// Parse splits uri into its RFC 3986 components using the default
// Parser. On failure it returns a *ParseError wrapping one of the
// error kinds declared in this package; no partial result is produced.
func Parse(uri string) (Components, error) {
	return defaultParser.Parse(uri)
}

// ParseNormalized normalizes uri to Unicode Normalization Form C before
// parsing it. Useful when the input does not come from an
// NFC-normalized source, so canonically equivalent inputs yield
// identical components.
func ParseNormalized(uri string) (Components, error) {
	return defaultParser.ParseNormalized(uri)
}

// IsHost reports whether host is valid: empty, an IP-literal, or a
// registered name, using the default Parser.
func IsHost(host string) bool {
	return defaultParser.IsHost(host)
}

// Parse splits uri into its RFC 3986 components. On failure it returns
// a *ParseError wrapping one of the error kinds declared in this
// package; no partial result is produced.
func (p *Parser) Parse(uri string) (Components, error) {
	c, err := p.parse(uri)
	if err != nil {
		return Components{}, &ParseError{Input: uri, Err: err}
	}
	return c, nil
}

// ParseNormalized applies NFC normalization to uri, then parses it.
func (p *Parser) ParseNormalized(uri string) (Components, error) {
	return p.Parse(norm.NFC.String(uri))
}

// IsHost reports whether host is valid: empty, an IP-literal, or a
// registered name. A non-ASCII host is invalid when the Parser has no
// IDN capability.
func (p *Parser) IsHost(host string) bool {
	return p.checkHost(host) == nil
}
