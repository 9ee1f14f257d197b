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

package glossary

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// sep separates alternate words or definitions in joined form.
	sep = '|'

	// escape precedes a literal sep inside a joined element.
	escape = '\\'
)

// multiStr holds either a single string or an ordered list of two or more
// strings. A list with a single element is always stored as a scalar.
type multiStr struct {
	one  string
	many []string
}

// newMultiStr creates a multiStr from a string or a list of strings.
func newMultiStr(v any) (multiStr, error) {
	switch v := v.(type) {
	case string:
		return multiStr{one: v}, nil
	case []string:
		if len(v) == 0 {
			return multiStr{}, fmt.Errorf("%w: empty list", ErrInvalidType)
		}
		return multiStrOf(v), nil
	default:
		return multiStr{}, fmt.Errorf("%w: %T", ErrInvalidType, v)
	}
}

// multiStrOf creates a multiStr from a non-empty list.
func multiStrOf(values []string) multiStr {
	if len(values) == 1 {
		return multiStr{one: values[0]}
	}
	return multiStr{many: slices.Clone(values)}
}

func (m multiStr) isList() bool {
	return m.many != nil
}

// len returns the number of elements.
func (m multiStr) len() int {
	if m.isList() {
		return len(m.many)
	}
	return 1
}

// first returns the first element.
func (m multiStr) first() string {
	if m.isList() {
		return m.many[0]
	}
	return m.one
}

// values returns a copy of the elements as a list.
func (m multiStr) values() []string {
	if m.isList() {
		return slices.Clone(m.many)
	}
	return []string{m.one}
}

// join returns the scalar value or the escaped join of the list.
func (m multiStr) join() string {
	if m.isList() {
		return joinEscaped(m.many)
	}
	return m.one
}

// mapEach applies fn to every element, keeping the scalar or list shape.
func (m multiStr) mapEach(fn func(string) string) multiStr {
	if !m.isList() {
		return multiStr{one: fn(m.one)}
	}
	many := make([]string, len(m.many))
	for i, s := range m.many {
		many[i] = fn(s)
	}
	return multiStr{many: many}
}

// joinEscaped joins parts with sep after escaping every sep in each part.
func joinEscaped(parts []string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(sep)
		}
		for j := 0; j < len(p); j++ {
			if p[j] == sep {
				b.WriteByte(escape)
			}
			b.WriteByte(p[j])
		}
	}
	return b.String()
}

// splitEscaped is the inverse of joinEscaped. It splits s on every sep that
// is not preceded by escape and unescapes escaped seps. Other escape bytes are
// kept as is.
func splitEscaped(s string) []string {
	var parts []string
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == escape && i+1 < len(s) && s[i+1] == sep:
			b.WriteByte(sep)
			i++
		case s[i] == sep:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteByte(s[i])
		}
	}
	return append(parts, b.String())
}

// firstEscaped returns the first element of an escaped join.
func firstEscaped(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == escape && i+1 < len(s) && s[i+1] == sep:
			b.WriteByte(sep)
			i++
		case s[i] == sep:
			return b.String()
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
