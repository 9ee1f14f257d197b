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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJoinEscaped_roundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		parts  []string
		joined string
	}{
		{
			name:   "single",
			parts:  []string{"hello"},
			joined: "hello",
		},
		{
			name:   "multiple",
			parts:  []string{"cat", "kitty", "puss"},
			joined: "cat|kitty|puss",
		},
		{
			name:   "separator in element",
			parts:  []string{"a|b", "c"},
			joined: `a\|b|c`,
		},
		{
			name:   "only separators",
			parts:  []string{"|", "||"},
			joined: `\||\|\|`,
		},
		{
			name:   "empty elements",
			parts:  []string{"", "x", ""},
			joined: "|x|",
		},
		{
			name:   "backslash not before separator",
			parts:  []string{`a\b`, `c\`},
			joined: `a\b|c\`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			joined := joinEscaped(test.parts)
			if diff := cmp.Diff(test.joined, joined); diff != "" {
				t.Fatalf("joinEscaped (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.parts, splitEscaped(joined)); diff != "" {
				t.Fatalf("splitEscaped (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.parts[0], firstEscaped(joined)); diff != "" {
				t.Fatalf("firstEscaped (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestMultiStr(t *testing.T) {
	t.Parallel()

	t.Run("collapse", func(t *testing.T) {
		t.Parallel()

		m, err := newMultiStr([]string{"only"})
		if err != nil {
			t.Fatalf("newMultiStr: %v", err)
		}
		if m.isList() {
			t.Fatalf("single element list was not collapsed")
		}
		if diff := cmp.Diff([]string{"only"}, m.values()); diff != "" {
			t.Fatalf("values (-want, +got):\n%s", diff)
		}
	})

	t.Run("values is a copy", func(t *testing.T) {
		t.Parallel()

		m := multiStrOf([]string{"a", "b"})
		v := m.values()
		v[0] = "changed"
		if diff := cmp.Diff([]string{"a", "b"}, m.values()); diff != "" {
			t.Fatalf("values (-want, +got):\n%s", diff)
		}
	})

	t.Run("mapEach keeps shape", func(t *testing.T) {
		t.Parallel()

		m := multiStrOf([]string{"a", "b"}).mapEach(func(string) string { return "" })
		if !m.isList() || m.len() != 2 {
			t.Fatalf("mapEach: want list of 2, got %#v", m)
		}
	})
}
