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
	"encoding/hex"
	"strings"
)

// percentDecode decodes every well-formed percent-encoded triplet in s.
// Malformed sequences (a '%' not followed by two hex digits) are kept
// as-is. It is used to inspect zone identifiers, whose decoded form is
// what the grammar constrains.
func percentDecode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '%' && i+2 < len(s) && isASCIIHexDigit(rune(s[i+1])) && isASCIIHexDigit(rune(s[i+2])) {
			// Both digits are guaranteed hex by the guard above.
			decoded, _ := hex.DecodeString(s[i+1 : i+3])
			b.WriteByte(decoded[0])
			i += 3
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
