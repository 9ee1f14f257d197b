// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding implements [transform.Transformer] implementations that
// normalize headword bytes before they are used as sort keys.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceFolder removes leading and trailing whitespace and replaces every
// internal whitespace span with a single ASCII space. Bytes that are not valid
// UTF-8 are copied through unchanged so that keys for malformed input stay
// distinct.
type WhitespaceFolder struct {
	// notStart is true after the first non-whitespace rune was emitted.
	notStart bool

	// wsSpan is true while inside an internal whitespace span.
	wsSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if c != utf8.RuneError && unicode.IsSpace(c) {
			nSrc += size
			if w.notStart {
				w.wsSpan = true
			}
			continue
		}

		if w.wsSpan {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			w.wsSpan = false
		}

		// Copy the source bytes rather than re-encoding c so that invalid
		// sequences are preserved.
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		w.notStart = true
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}
