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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"errors"
	"testing"
)

// TestParse exercises the full dispatch chain against the component
// sets required by RFC 3986, Section 3.
func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Components
	}{
		{
			name:  "empty string",
			input: "",
			want:  Components{},
		},
		{
			name:  "lone fragment delimiter",
			input: "#",
			want:  Components{hasFragment: true},
		},
		{
			name:  "lone query delimiter",
			input: "?",
			want:  Components{hasQuery: true},
		},
		{
			name:  "query and fragment delimiters only",
			input: "?#",
			want:  Components{hasQuery: true, hasFragment: true},
		},
		{
			name:  "root path",
			input: "/",
			want:  Components{path: "/"},
		},
		{
			name:  "empty authority",
			input: "//",
			want:  Components{hasHost: true},
		},
		{
			name:  "fragment only",
			input: "#f",
			want:  Components{fragment: "f", hasFragment: true},
		},
		{
			name:  "fragment containing a hash",
			input: "##",
			want:  Components{fragment: "#", hasFragment: true},
		},
		{
			name:  "query and fragment",
			input: "?q#f",
			want:  Components{query: "q", hasQuery: true, fragment: "f", hasFragment: true},
		},
		{
			name:  "query only",
			input: "?a=b",
			want:  Components{query: "a=b", hasQuery: true},
		},
		{
			name:  "full authority form",
			input: "//a:b@host:81/p?q#f",
			want: Components{
				user: "a", hasUser: true,
				pass: "b", hasPass: true,
				host: "host", hasHost: true,
				port: 81, hasPort: true,
				path:  "/p",
				query: "q", hasQuery: true,
				fragment: "f", hasFragment: true,
			},
		},
		{
			name:  "host only",
			input: "//example.com",
			want:  Components{host: "example.com", hasHost: true},
		},
		{
			name:  "host with trailing dot",
			input: "//example.com.",
			want:  Components{host: "example.com.", hasHost: true},
		},
		{
			name:  "percent-encoded host",
			input: "//ex%41mple.com",
			want:  Components{host: "ex%41mple.com", hasHost: true},
		},
		{
			name:  "empty authority with path",
			input: "///p",
			want:  Components{hasHost: true, path: "/p"},
		},
		{
			name:  "empty authority with query",
			input: "//?q",
			want:  Components{hasHost: true, query: "q", hasQuery: true},
		},
		{
			name:  "empty host with port",
			input: "//:8080",
			want:  Components{hasHost: true, port: 8080, hasPort: true},
		},
		{
			name:  "empty user-info",
			input: "//@host",
			want:  Components{hasUser: true, host: "host", hasHost: true},
		},
		{
			name:  "user without password",
			input: "//user@host",
			want:  Components{user: "user", hasUser: true, host: "host", hasHost: true},
		},
		{
			name:  "host colon without digits",
			input: "//host:",
			want:  Components{host: "host", hasHost: true},
		},
		{
			name:  "port zero",
			input: "//host:0",
			want:  Components{host: "host", hasHost: true, port: 0, hasPort: true},
		},
		{
			name:  "fragment before any slash in authority form",
			input: "//host#f/x",
			want:  Components{host: "host", hasHost: true, fragment: "f/x", hasFragment: true},
		},
		{
			name:  "query swallows a slash in authority form",
			input: "//host?q/v",
			want:  Components{host: "host", hasHost: true, query: "q/v", hasQuery: true},
		},
		{
			name:  "IPv6 literal with port",
			input: "//[::1]:8080",
			want:  Components{host: "[::1]", hasHost: true, port: 8080, hasPort: true},
		},
		{
			name:  "IPv6 literal without port",
			input: "//[2001:db8::7]",
			want:  Components{host: "[2001:db8::7]", hasHost: true},
		},
		{
			name:  "link-local IPv6 with zone id",
			input: "//[fe80::1%25eth0]",
			want:  Components{host: "[fe80::1%25eth0]", hasHost: true},
		},
		{
			name:  "IPvFuture literal",
			input: "//[v7.addr]:80",
			want:  Components{host: "[v7.addr]", hasHost: true, port: 80, hasPort: true},
		},
		{
			name:  "plain relative path",
			input: "p/q",
			want:  Components{path: "p/q"},
		},
		{
			name:  "absolute path with colon after slash",
			input: "/a/b:c",
			want:  Components{path: "/a/b:c"},
		},
		{
			name:  "scheme with opaque path",
			input: "a:b",
			want:  Components{scheme: "a", hasScheme: true, path: "b"},
		},
		{
			name:  "scheme with empty remainder",
			input: "a:",
			want:  Components{scheme: "a", hasScheme: true},
		},
		{
			name:  "scheme with empty authority",
			input: "a://",
			want:  Components{scheme: "a", hasScheme: true, hasHost: true},
		},
		{
			name:  "scheme with authority and path",
			input: "http://example.com/p?q#f",
			want: Components{
				scheme: "http", hasScheme: true,
				host: "example.com", hasHost: true,
				path:  "/p",
				query: "q", hasQuery: true,
				fragment: "f", hasFragment: true,
			},
		},
		{
			name:  "scheme with empty authority and absolute path",
			input: "file:///p",
			want:  Components{scheme: "file", hasScheme: true, hasHost: true, path: "/p"},
		},
		{
			name:  "scheme case is preserved",
			input: "HTTP://example.com",
			want:  Components{scheme: "HTTP", hasScheme: true, host: "example.com", hasHost: true},
		},
		{
			name:  "mailto-style opaque path",
			input: "mailto:user@example.com",
			want:  Components{scheme: "mailto", hasScheme: true, path: "user@example.com"},
		},
		{
			name:  "opaque path with query and fragment",
			input: "a:b?q#f",
			want: Components{
				scheme: "a", hasScheme: true,
				path:  "b",
				query: "q", hasQuery: true,
				fragment: "f", hasFragment: true,
			},
		},
		{
			name:  "invalid scheme candidate re-routes to path parsing",
			input: "x/y:z",
			want:  Components{path: "x/y:z"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseErrors checks that each malformed input fails with the
// expected kind and produces no partial result.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"control byte in path", "/a\nb", ErrInvalidCharacters},
		{"delete byte", "\x7fhello", ErrInvalidCharacters},
		{"control byte in authority", "//ho\x01st", ErrInvalidCharacters},
		{"empty scheme", ":b", ErrInvalidScheme},
		{"empty scheme with authority", "://host", ErrInvalidScheme},
		{"colon before slash in path", "a1:b/c", ErrInvalidPath},
		{"colon in first segment", "1a:b", ErrInvalidPath},
		{"unterminated IP literal", "//[::1", ErrInvalidHostname},
		{"garbage after bracket", "//[::1]x", ErrInvalidHostname},
		{"zone id on non-link-local address", "//[2001:db8::1%25eth0]", ErrInvalidHost},
		{"space in host", "//ho st", ErrInvalidHost},
		{"second at-sign lands in host", "//u@v@w", ErrInvalidHost},
		{"non-digit port", "//host:8a", ErrInvalidPort},
		{"negative port", "//host:-1", ErrInvalidPort},
		{"port above uint16 range", "//host:99999", ErrInvalidPort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %+v, want error %v", tt.input, got, tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want kind %v", tt.input, err, tt.wantErr)
			}
			if got != (Components{}) {
				t.Errorf("Parse(%q) returned partial result %+v on error", tt.input, got)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q) error type = %T, want *ParseError", tt.input, err)
			}
			if parseErr.Input != tt.input {
				t.Errorf("ParseError.Input = %q, want %q", parseErr.Input, tt.input)
			}
		})
	}
}

// TestParseDeterminism verifies that re-parsing the same string yields
// identical components, and that components without a host never carry
// a port.
func TestParseDeterminism(t *testing.T) {
	inputs := []string{
		"", "#", "?", "?#", "/", "//",
		"//a:b@host:81/p?q#f",
		"http://example.com/p?q#f",
		"mailto:user@example.com",
		"x/y:z",
		"//[fe80::1%25eth0]",
	}
	for _, input := range inputs {
		first, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", input, err)
		}
		second, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error on second parse: %v", input, err)
		}
		if first != second {
			t.Errorf("Parse(%q) is not deterministic: %+v != %+v", input, first, second)
		}

		if _, hasHost := first.Host(); !hasHost {
			if _, hasPort := first.Port(); hasPort {
				t.Errorf("Parse(%q) has a port without a host", input)
			}
		}
	}
}

// TestParseRejectedSchemeMatchesPathParse checks the fallback
// invariant: whenever the scheme candidate fails the grammar, the
// result is identical to parsing the whole string as a no-scheme path.
func TestParseRejectedSchemeMatchesPathParse(t *testing.T) {
	inputs := []string{"x/y:z", "a b/c:d", "1/2:3"}
	for _, input := range inputs {
		candidate, _, found := cutAtColon(input)
		if !found || IsScheme(candidate) {
			t.Fatalf("test input %q does not carry a rejected scheme candidate", input)
		}

		got, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", input, err)
		}
		want, err := parsePathForm(input)
		if err != nil {
			t.Fatalf("parsePathForm(%q) unexpected error: %v", input, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %+v, want path-form result %+v", input, got, want)
		}
	}
}

// cutAtColon mirrors the fallback parser's split for test purposes.
func cutAtColon(s string) (string, string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

// TestIsScheme tests the scheme grammar, including its deliberate
// refusal of digits after the first character.
func TestIsScheme(t *testing.T) {
	tests := []struct {
		name   string
		scheme string
		want   bool
	}{
		{"empty scheme", "", true},
		{"single letter", "a", true},
		{"common scheme", "http", true},
		{"uppercase scheme", "HTTP", true},
		{"mixed case", "MailTo", true},
		{"plus sign", "git+ssh", true},
		{"dash", "view-source", true},
		{"dot", "soap.beep", true},
		{"digit after first character", "a1", false},
		{"h2c-style name", "h2c", false},
		{"leading digit", "1a", false},
		{"leading plus", "+a", false},
		{"embedded slash", "a/b", false},
		{"embedded colon", "a:b", false},
		{"embedded space", "a b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsScheme(tt.scheme); got != tt.want {
				t.Errorf("IsScheme(%q) = %v, want %v", tt.scheme, got, tt.want)
			}
		})
	}
}

// TestParseNormalized verifies that canonically equivalent inputs
// yield identical components once NFC normalization is applied.
func TestParseNormalized(t *testing.T) {
	// "e" followed by a combining acute accent composes to U+00E9.
	composed := "//caf\u00e9.example"
	decomposed := "//cafe\u0301.example"

	want, err := ParseNormalized(composed)
	if err != nil {
		t.Fatalf("ParseNormalized(%q) unexpected error: %v", composed, err)
	}
	got, err := ParseNormalized(decomposed)
	if err != nil {
		t.Fatalf("ParseNormalized(%q) unexpected error: %v", decomposed, err)
	}
	if got != want {
		t.Errorf("ParseNormalized results differ: %+v != %+v", got, want)
	}

	host, ok := got.Host()
	if !ok || host != "caf\u00e9.example" {
		t.Errorf("ParseNormalized host = %q, %v, want %q, true", host, ok, "caf\u00e9.example")
	}
}
