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
	"regexp"
	"strings"

	"github.com/k3a/html2text"
)

// htmlPattern matches lower-cased definitions that contain common HTML tags.
var htmlPattern = regexp.MustCompile(`(?s)^.*(?:` + strings.Join([]string{
	`<font[ >]`,
	`<br\s*/?\s*>`,
	`<i[ >]`,
	`<b[ >]`,
	`<p[ >]`,
	`<hr\s*/?\s*>`,
	`<a href=`,
	`<div[ >]`,
	`<span[ >]`,
	`<img[ >]`,
	`<table[ >]`,
	`<sup[ >]`,
	`<u[ >]`,
	`<ul[ >]`,
	`<ol[ >]`,
	`<li[ >]`,
}, "|") + `)`)

// ByteProgress reports how far a reader has progressed through its input when
// the entry was read. It is used for progress reporting only.
type ByteProgress struct {
	// Consumed is the number of bytes read so far.
	Consumed int64

	// Total is the total number of bytes in the input.
	Total int64
}

// Entry is a text glossary entry: a headword and its alternates mapped to one
// or more definitions.
//
// An Entry must not be modified concurrently.
type Entry struct {
	word     multiStr
	defi     multiStr
	format   Format
	progress *ByteProgress
}

// NewEntry returns a new text entry. word and defi must each be a string or a
// non-empty []string; the first word is the headword and the rest are
// alternates. A zero format means [FormatPlain]. progress is optional.
func NewEntry(word, defi any, format Format, progress *ByteProgress) (*Entry, error) {
	w, err := newMultiStr(word)
	if err != nil {
		return nil, fmt.Errorf("word: %w", err)
	}
	d, err := newMultiStr(defi)
	if err != nil {
		return nil, fmt.Errorf("defi: %w", err)
	}

	if format == 0 {
		format = FormatPlain
	}
	if !format.IsText() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, format)
	}

	return &Entry{
		word:     w,
		defi:     d,
		format:   format,
		progress: progress,
	}, nil
}

// Word returns the headword followed by the alternate words, joined by '|'.
// '|' characters inside words are escaped with a backslash.
func (e *Entry) Word() string {
	return e.word.join()
}

// Words returns the headword followed by the alternate words.
func (e *Entry) Words() []string {
	return e.word.values()
}

// Defi returns the definitions joined by '|'. '|' characters inside
// definitions are escaped with a backslash.
func (e *Entry) Defi() string {
	return e.defi.join()
}

// Defis returns the definition followed by its alternates.
func (e *Entry) Defis() []string {
	return e.defi.values()
}

// DefiFormat returns the definition format.
func (e *Entry) DefiFormat() Format {
	return e.format
}

// SetDefiFormat sets the definition format.
func (e *Entry) SetDefiFormat(format Format) error {
	if !format.IsText() {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, format)
	}
	e.format = format
	return nil
}

// ByteProgress returns the entry's read progress or nil.
func (e *Entry) ByteProgress() *ByteProgress {
	return e.progress
}

// IsData returns false.
func (*Entry) IsData() bool {
	return false
}

// DetectDefiFormat upgrades a plain text definition to HTML if it contains
// HTML tags. Entries in other formats are left untouched.
func (e *Entry) DetectDefiFormat() {
	if e.format != FormatPlain {
		return
	}
	if htmlPattern.MatchString(strings.ToLower(e.Defi())) {
		e.format = FormatHTML
	}
}

// DefiText returns the definitions as plain text joined by newlines. HTML
// definitions are converted to text.
func (e *Entry) DefiText() string {
	defis := e.defi.values()
	if e.format == FormatHTML {
		for i, d := range defis {
			defis[i] = html2text.HTML2Text(d)
		}
	}
	return strings.Join(defis, "\n")
}

// AddAlt appends an alternate word.
func (e *Entry) AddAlt(alt string) {
	e.word = multiStrOf(append(e.word.values(), alt))
}

// EditFuncWord replaces every word w with fn(w).
func (e *Entry) EditFuncWord(fn func(string) string) {
	e.word = e.word.mapEach(fn)
}

// EditFuncDefi replaces every definition d with fn(d).
func (e *Entry) EditFuncDefi(fn func(string) string) {
	e.defi = e.defi.mapEach(fn)
}

// Strip removes leading and trailing whitespace from all words and
// definitions, and then removes trailing <br> and <BR> tags from definitions.
func (e *Entry) Strip() {
	e.EditFuncWord(strings.TrimSpace)
	e.EditFuncDefi(strings.TrimSpace)
	e.EditFuncDefi(stripTrailingBR)
}

func stripTrailingBR(s string) string {
	for strings.HasSuffix(s, "<br>") || strings.HasSuffix(s, "<BR>") {
		s = s[:len(s)-len("<br>")]
	}
	return s
}

// ReplaceInWord replaces all occurrences of source with target in all words.
func (e *Entry) ReplaceInWord(source, target string) {
	e.EditFuncWord(func(s string) string {
		return strings.ReplaceAll(s, source, target)
	})
}

// ReplaceInDefi replaces all occurrences of source with target in all
// definitions.
func (e *Entry) ReplaceInDefi(source, target string) {
	e.EditFuncDefi(func(s string) string {
		return strings.ReplaceAll(s, source, target)
	})
}

// Replace replaces all occurrences of source with target in all words and
// definitions.
func (e *Entry) Replace(source, target string) {
	e.ReplaceInWord(source, target)
	e.ReplaceInDefi(source, target)
}

// RemoveEmptyAndDuplicateAltWords removes empty words and repeated words,
// keeping the first occurrence of each. Entries with a single word are left
// unchanged. If every word is empty the entry is left with a single empty
// word.
func (e *Entry) RemoveEmptyAndDuplicateAltWords() {
	if e.word.len() == 1 {
		return
	}

	seen := make(map[string]struct{}, e.word.len())
	var words []string
	for _, w := range e.word.many {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if len(words) == 0 {
		words = []string{""}
	}
	e.word = multiStrOf(words)
}

// RawTuple returns the entry's raw tuple. The format tag is omitted when the
// entry's format is defaultFormat.
func (e *Entry) RawTuple(defaultFormat Format) Raw {
	r := Raw{
		Word: []byte(joinEscaped(e.word.values())),
		Defi: []byte(joinEscaped(e.defi.values())),
	}
	if e.format != defaultFormat {
		r.Format = e.format
	}
	return r
}

// ToRaw returns the entry's encoded raw record.
func (e *Entry) ToRaw(opts *Options) ([]byte, error) {
	return EncodeRaw(e.RawTuple(opts.defaultDefiFormat()), opts.compress())
}
