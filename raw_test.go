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

package glossary_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-glossary"
)

func TestRaw_MarshalBinary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      glossary.Raw
		expected []byte
	}{
		{
			name: "two tuple",
			raw: glossary.Raw{
				Word: []byte("hi"),
				Defi: []byte("x"),
			},
			expected: []byte{0, 0, 0, 2, 'h', 'i', 0, 0, 0, 1, 'x'},
		},
		{
			name: "three tuple",
			raw: glossary.Raw{
				Word:   []byte("a"),
				Defi:   []byte{},
				Format: glossary.FormatBinary,
			},
			expected: []byte{0, 0, 0, 1, 'a', 0, 0, 0, 0, 'b'},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b, err := test.raw.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary: %v", err)
			}
			if diff := cmp.Diff(test.expected, b); diff != "" {
				t.Fatalf("MarshalBinary (-want, +got):\n%s", diff)
			}

			var got glossary.Raw
			if err := got.UnmarshalBinary(b); err != nil {
				t.Fatalf("UnmarshalBinary: %v", err)
			}
			if diff := cmp.Diff(test.raw, got, cmpEmptyBytes); diff != "" {
				t.Fatalf("UnmarshalBinary (-want, +got):\n%s", diff)
			}
		})
	}
}

// cmpEmptyBytes treats nil and empty byte slices as equal.
var cmpEmptyBytes = cmp.Comparer(func(a, b []byte) bool {
	return string(a) == string(b)
})

func TestDecodeRaw_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       []byte
		compressed bool
	}{
		{
			name: "empty",
			data: []byte{},
		},
		{
			name: "truncated word",
			data: []byte{0, 0, 0, 5, 'a'},
		},
		{
			name: "missing defi",
			data: []byte{0, 0, 0, 1, 'a'},
		},
		{
			name: "trailing bytes",
			data: []byte{0, 0, 0, 1, 'a', 0, 0, 0, 0, 'm', 'x'},
		},
		{
			name: "zero tag",
			data: []byte{0, 0, 0, 1, 'a', 0, 0, 0, 0, 0},
		},
		{
			name:       "not compressed",
			data:       []byte{0, 0, 0, 1, 'a', 0, 0, 0, 0},
			compressed: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := glossary.DecodeRaw(test.data, test.compressed)
			if !errors.Is(err, glossary.ErrDecode) {
				t.Fatalf("DecodeRaw: want %v, got %v", glossary.ErrDecode, err)
			}
		})
	}
}

func TestFromRawTuple_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   glossary.Raw
		errIs []error
	}{
		{
			name:  "invalid utf-8 word",
			raw:   glossary.Raw{Word: []byte{0xff}, Defi: []byte("d")},
			errIs: []error{glossary.ErrDecode},
		},
		{
			name:  "invalid utf-8 defi",
			raw:   glossary.Raw{Word: []byte("w"), Defi: []byte{0xc3}},
			errIs: []error{glossary.ErrDecode},
		},
		{
			name:  "unknown tag",
			raw:   glossary.Raw{Word: []byte("w"), Defi: []byte("d"), Format: glossary.Format('q')},
			errIs: []error{glossary.ErrDecode, glossary.ErrInvalidFormat},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := glossary.FromRawTuple(nil, test.raw)
			for _, want := range test.errIs {
				if !errors.Is(err, want) {
					t.Errorf("FromRawTuple: want %v, got %v", want, err)
				}
			}
		})
	}
}

func TestEntry_ToRaw(t *testing.T) {
	t.Parallel()

	opts := &glossary.Options{
		DefaultDefiFormat: glossary.FormatHTML,
		EnableAlts:        true,
	}

	tests := []struct {
		name     string
		entry    *glossary.Entry
		expected glossary.Raw
	}{
		{
			name:  "default format omits tag",
			entry: mustEntry(t, "w", "<b>d</b>", glossary.FormatHTML),
			expected: glossary.Raw{
				Word: []byte("w"),
				Defi: []byte("<b>d</b>"),
			},
		},
		{
			name:  "other format has tag",
			entry: mustEntry(t, []string{"w", "a|b"}, "d", glossary.FormatPlain),
			expected: glossary.Raw{
				Word:   []byte(`w|a\|b`),
				Defi:   []byte("d"),
				Format: glossary.FormatPlain,
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b, err := test.entry.ToRaw(opts)
			if err != nil {
				t.Fatalf("ToRaw: %v", err)
			}
			got, err := glossary.DecodeRaw(b, false)
			if err != nil {
				t.Fatalf("DecodeRaw: %v", err)
			}
			if diff := cmp.Diff(test.expected, got, cmpEmptyBytes); diff != "" {
				t.Fatalf("raw tuple (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestEntry_rawRoundTrip tests that FromRaw reverses ToRaw.
func TestEntry_rawRoundTrip(t *testing.T) {
	t.Parallel()

	entries := []struct {
		name   string
		word   any
		defi   any
		format glossary.Format
	}{
		{
			name:   "scalar",
			word:   "hello",
			defi:   "a greeting",
			format: glossary.FormatPlain,
		},
		{
			name:   "alternates",
			word:   []string{"colour", "color"},
			defi:   []string{"<i>hue</i>", "tint"},
			format: glossary.FormatHTML,
		},
		{
			name:   "separators",
			word:   []string{"a|b", "|", "c"},
			defi:   "x | y",
			format: glossary.FormatXDXF,
		},
		{
			name:   "unicode",
			word:   []string{"中文", "zhōngwén"},
			defi:   "Chinese language",
			format: glossary.FormatPlain,
		},
		{
			name:   "empty",
			word:   "",
			defi:   "",
			format: glossary.FormatPlain,
		},
	}

	contexts := []struct {
		name string
		opts *glossary.Options
	}{
		{
			name: "default",
			opts: nil,
		},
		{
			name: "compressed",
			opts: &glossary.Options{
				DefaultDefiFormat: glossary.FormatPlain,
				EnableAlts:        true,
				Compress:          true,
			},
		},
		{
			name: "html default compressed",
			opts: &glossary.Options{
				DefaultDefiFormat: glossary.FormatHTML,
				EnableAlts:        true,
				Compress:          true,
			},
		},
	}

	for _, c := range contexts {
		for _, test := range entries {
			test := test
			t.Run(c.name+"/"+test.name, func(t *testing.T) {
				t.Parallel()

				e := mustEntry(t, test.word, test.defi, test.format)
				b, err := e.ToRaw(c.opts)
				if err != nil {
					t.Fatalf("ToRaw: %v", err)
				}

				r, err := glossary.FromRaw(c.opts, b)
				if err != nil {
					t.Fatalf("FromRaw: %v", err)
				}
				got, ok := r.(*glossary.Entry)
				if !ok {
					t.Fatalf("FromRaw: want *glossary.Entry, got %T", r)
				}

				if diff := cmp.Diff(e.Words(), got.Words()); diff != "" {
					t.Errorf("Words (-want, +got):\n%s", diff)
				}
				if diff := cmp.Diff(e.Word(), got.Word()); diff != "" {
					t.Errorf("Word (-want, +got):\n%s", diff)
				}
				if diff := cmp.Diff(e.Defis(), got.Defis()); diff != "" {
					t.Errorf("Defis (-want, +got):\n%s", diff)
				}
				if got, want := got.DefiFormat(), e.DefiFormat(); got != want {
					t.Errorf("DefiFormat: want %v, got %v", want, got)
				}
			})
		}
	}
}

func TestFromRaw_noAlts(t *testing.T) {
	t.Parallel()

	opts := &glossary.Options{
		DefaultDefiFormat: glossary.FormatPlain,
	}

	e := mustEntry(t, []string{"a", "b|c"}, "x|y", 0)
	b, err := e.ToRaw(opts)
	if err != nil {
		t.Fatalf("ToRaw: %v", err)
	}
	r, err := glossary.FromRaw(opts, b)
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}

	// Alternates stay joined but a single escaped value is restored.
	if diff := cmp.Diff([]string{`a|b\|c`}, r.Words()); diff != "" {
		t.Errorf("Words (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x|y"}, r.Defis()); diff != "" {
		t.Errorf("Defis (-want, +got):\n%s", diff)
	}
}

// TestFromRaw_trailingBackslash pins the known ambiguity of the escaped join:
// an element ending in a backslash followed by another element reads back as
// an escaped separator, merging the two elements.
func TestFromRaw_trailingBackslash(t *testing.T) {
	t.Parallel()

	e := mustEntry(t, []string{`a\`, "b"}, "d", 0)
	if diff := cmp.Diff([]string{`a\`, "b"}, e.Words()); diff != "" {
		t.Fatalf("Words (-want, +got):\n%s", diff)
	}

	b, err := e.ToRaw(glossary.DefaultOptions)
	if err != nil {
		t.Fatalf("ToRaw: %v", err)
	}
	r, err := glossary.FromRaw(glossary.DefaultOptions, b)
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if diff := cmp.Diff([]string{"a|b"}, r.Words()); diff != "" {
		t.Errorf("Words (-want, +got):\n%s", diff)
	}

	// Backslashes elsewhere round trip.
	e = mustEntry(t, []string{`a\b`, `\c`}, "d", 0)
	b, err = e.ToRaw(glossary.DefaultOptions)
	if err != nil {
		t.Fatalf("ToRaw: %v", err)
	}
	r, err = glossary.FromRaw(glossary.DefaultOptions, b)
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if diff := cmp.Diff([]string{`a\b`, `\c`}, r.Words()); diff != "" {
		t.Errorf("Words (-want, +got):\n%s", diff)
	}
}

func TestFromRaw_defaultFormat(t *testing.T) {
	t.Parallel()

	b, err := glossary.EncodeRaw(glossary.Raw{
		Word: []byte("w"),
		Defi: []byte("d"),
	}, false)
	if err != nil {
		t.Fatalf("EncodeRaw: %v", err)
	}

	r, err := glossary.FromRaw(&glossary.Options{DefaultDefiFormat: glossary.FormatXDXF}, b)
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if got, want := r.DefiFormat(), glossary.FormatXDXF; got != want {
		t.Fatalf("DefiFormat: want %v, got %v", want, got)
	}
}

func TestEncodeRaw_compressed(t *testing.T) {
	t.Parallel()

	raw := glossary.Raw{
		Word:   []byte("word"),
		Defi:   []byte("definition definition definition definition"),
		Format: glossary.FormatHTML,
	}
	plain, err := glossary.EncodeRaw(raw, false)
	if err != nil {
		t.Fatalf("EncodeRaw: %v", err)
	}
	compressed, err := glossary.EncodeRaw(raw, true)
	if err != nil {
		t.Fatalf("EncodeRaw: %v", err)
	}
	if string(plain) == string(compressed) {
		t.Fatalf("EncodeRaw: compressed output equals uncompressed output")
	}

	got, err := glossary.DecodeRaw(compressed, true)
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	if diff := cmp.Diff(raw, got, cmpEmptyBytes); diff != "" {
		t.Fatalf("DecodeRaw (-want, +got):\n%s", diff)
	}
}
