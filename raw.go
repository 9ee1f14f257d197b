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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/klauspost/compress/zlib"
)

// Raw is the raw tuple form of a record. A zero Format means the record is
// in the glossary's default format and no tag is stored.
//
// For resources Word is the file name, Defi is the saved path (or empty) and
// Format is [FormatBinary].
type Raw struct {
	Word   []byte
	Defi   []byte
	Format Format
}

// MarshalBinary implements [encoding.BinaryMarshaler]. Word and Defi are each
// written as a 32-bit big endian size followed by the data. The format tag, if
// any, is written as a final single byte.
func (r Raw) MarshalBinary() ([]byte, error) {
	if uint64(len(r.Word)) > math.MaxUint32 || uint64(len(r.Defi)) > math.MaxUint32 {
		return nil, fmt.Errorf("raw entry too large")
	}

	size := 8 + len(r.Word) + len(r.Defi)
	if r.Format != 0 {
		size++
	}
	b := make([]byte, 0, size)
	//nolint:gosec // sizes are bounds checked above.
	b = binary.BigEndian.AppendUint32(b, uint32(len(r.Word)))
	b = append(b, r.Word...)
	//nolint:gosec // sizes are bounds checked above.
	b = binary.BigEndian.AppendUint32(b, uint32(len(r.Defi)))
	b = append(b, r.Defi...)
	if r.Format != 0 {
		b = append(b, byte(r.Format))
	}
	return b, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler]. Errors wrap
// [ErrDecode].
func (r *Raw) UnmarshalBinary(b []byte) error {
	word, b, err := readField(b)
	if err != nil {
		return fmt.Errorf("%w: word: %w", ErrDecode, err)
	}
	defi, b, err := readField(b)
	if err != nil {
		return fmt.Errorf("%w: defi: %w", ErrDecode, err)
	}

	var format Format
	switch len(b) {
	case 0:
	case 1:
		format = Format(b[0])
		if format == 0 {
			return fmt.Errorf("%w: empty format tag", ErrDecode)
		}
	default:
		return fmt.Errorf("%w: %d trailing bytes", ErrDecode, len(b))
	}

	*r = Raw{
		Word:   word,
		Defi:   defi,
		Format: format,
	}
	return nil
}

// readField reads a size prefixed field and returns it with the remaining
// data.
func readField(b []byte) ([]byte, []byte, error) {
	if len(b) < 4 {
		return nil, nil, io.ErrUnexpectedEOF
	}
	size := binary.BigEndian.Uint32(b)
	b = b[4:]
	if uint64(len(b)) < uint64(size) {
		return nil, nil, io.ErrUnexpectedEOF
	}
	return b[:size], b[size:], nil
}

// EncodeRaw serializes r and, if compress is true, compresses it with zlib at
// the best compression level.
func EncodeRaw(r Raw, compress bool) ([]byte, error) {
	b, err := r.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if !compress {
		return b, nil
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("creating zlib writer: %w", err)
	}
	if _, err := zw.Write(b); err != nil {
		return nil, fmt.Errorf("compressing raw entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compressing raw entry: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeRaw is the inverse of [EncodeRaw]. compressed must match the value
// given to EncodeRaw. Errors wrap [ErrDecode].
func DecodeRaw(b []byte, compressed bool) (Raw, error) {
	if compressed {
		zr, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			return Raw{}, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		defer zr.Close()

		b, err = io.ReadAll(zr)
		if err != nil {
			return Raw{}, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}

	var r Raw
	if err := r.UnmarshalBinary(b); err != nil {
		return Raw{}, err
	}
	return r, nil
}

// FromRaw decodes an encoded raw record produced by ToRaw with the same
// options.
func FromRaw(opts *Options, b []byte) (Record, error) {
	r, err := DecodeRaw(b, opts.compress())
	if err != nil {
		return nil, err
	}
	return FromRawTuple(opts, r)
}

// FromRawTuple creates a record from a raw tuple. Tuples tagged with
// [FormatBinary] become resources backed by the stored path; other tuples
// become text entries. Untagged tuples use the options' default format.
//
// When alternates are enabled the word and definition are split on unescaped
// '|' separators. Otherwise a value containing separators is kept joined.
func FromRawTuple(opts *Options, r Raw) (Record, error) {
	if !utf8.Valid(r.Word) {
		return nil, fmt.Errorf("%w: word is not valid utf-8", ErrDecode)
	}
	if !utf8.Valid(r.Defi) {
		return nil, fmt.Errorf("%w: defi is not valid utf-8", ErrDecode)
	}
	word, defi := string(r.Word), string(r.Defi)

	var format Format
	switch r.Format {
	case FormatBinary:
		if defi == "" {
			return NewInMemoryResource(word, nil), nil
		}
		return OpenSpooledResource(word, defi), nil
	case 0:
		format = opts.defaultDefiFormat()
	default:
		if !r.Format.IsText() {
			return nil, fmt.Errorf("%w: %w: %v", ErrDecode, ErrInvalidFormat, r.Format)
		}
		format = r.Format
	}

	alts := opts.enableAlts()
	e, err := NewEntry(splitField(word, alts), splitField(defi, alts), format, nil)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// splitField returns the elements of an escaped join. If the value holds more
// than one element and alts is false the joined value is returned as is.
func splitField(s string, alts bool) any {
	parts := splitEscaped(s)
	if len(parts) == 1 {
		return parts[0]
	}
	if alts {
		return parts
	}
	return s
}
