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
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-glossary/internal/folding"
	"github.com/ianlewis/go-glossary/internal/index"
)

// KeyFunc computes a sort key from the UTF-8 bytes of a headword. Keys are
// compared with [bytes.Compare].
type KeyFunc func([]byte) []byte

// DefaultSortKey lower-cases the ASCII letters of b.
func DefaultSortKey(b []byte) []byte {
	return foldKey(folding.ASCIILower{}, b)
}

// FoldedSortKey folds whitespace runs into a single space, trims leading and
// trailing whitespace, and lower-cases the ASCII letters of b.
func FoldedSortKey(b []byte) []byte {
	return foldKey(transform.Chain(&folding.WhitespaceFolder{}, folding.ASCIILower{}), b)
}

func foldKey(t transform.Transformer, b []byte) []byte {
	// The folding transformers never fail.
	k, _, _ := transform.Bytes(t, b)
	return k
}

// SortKeys derives sort keys for records and for their encoded raw form. For
// any record, the key of the record and the key of its raw encoding are
// equal, so live records and staged raw records can be sorted together.
type SortKeys struct {
	opts *Options
	key  KeyFunc
}

// NewSortKeys returns a new SortKeys. opts must match the options used to
// encode raw records. If key is nil, [DefaultSortKey] is used.
func NewSortKeys(opts *Options, key KeyFunc) *SortKeys {
	if key == nil {
		key = DefaultSortKey
	}
	return &SortKeys{
		opts: opts,
		key:  key,
	}
}

// Word returns the sort key of a headword.
func (s *SortKeys) Word(word string) []byte {
	return s.key([]byte(word))
}

// Entry returns the sort key of a record's headword.
func (s *SortKeys) Entry(r Record) []byte {
	return s.Word(r.Words()[0])
}

// Raw returns the sort key of an encoded raw record.
func (s *SortKeys) Raw(b []byte) ([]byte, error) {
	r, err := DecodeRaw(b, s.opts.compress())
	if err != nil {
		return nil, err
	}
	return s.RawTuple(r), nil
}

// RawTuple returns the sort key of a raw tuple.
func (s *SortKeys) RawTuple(r Raw) []byte {
	if r.Format == FormatBinary {
		return s.key(r.Word)
	}
	return s.Word(firstEscaped(string(r.Word)))
}

// SortRaw returns the encoded raw records sorted by their sort keys. Records
// with equal keys keep their relative order.
func SortRaw(opts *Options, records [][]byte, key KeyFunc) ([][]byte, error) {
	keys := NewSortKeys(opts, key)
	idx, err := index.New(records, keys.Raw)
	if err != nil {
		return nil, err
	}
	return idx.Values(), nil
}
