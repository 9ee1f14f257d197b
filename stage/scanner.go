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

package stage

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ianlewis/go-dictzip"
)

var (
	// ErrTruncated indicates that a staged file ends in the middle of a
	// record.
	ErrTruncated = errors.New("truncated record")

	// ErrRecordTooLarge indicates a record larger than the scanner's maximum
	// record size.
	ErrRecordTooLarge = errors.New("record too large")
)

// sizeLen is the length of the record size prefix.
const sizeLen = 4

// Scanner scans a staged file from start to end.
type Scanner struct {
	r             io.ReadCloser
	s             *bufio.Scanner
	maxRecordSize int
}

// ScannerOptions are options for scanning a staged file.
type ScannerOptions struct {
	// MaxRecordSize is the maximum size of a single record in bytes.
	MaxRecordSize int
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	MaxRecordSize: 64 << 20,
}

// NewScanner returns a new scanner that scans records from start to end. The
// Scanner assumes ownership of the reader and should be closed with the Close
// method.
func NewScanner(r io.ReadCloser, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}
	if options.MaxRecordSize <= 0 {
		return nil, fmt.Errorf("invalid max record size: %d", options.MaxRecordSize)
	}

	s := &Scanner{
		r:             r,
		s:             bufio.NewScanner(bufio.NewReader(r)),
		maxRecordSize: options.MaxRecordSize,
	}
	s.s.Buffer(make([]byte, 0, 64*1024), options.MaxRecordSize+sizeLen)
	s.s.Split(s.splitRecord)
	return s, nil
}

// Open opens the staged file at path for scanning. Files ending in
// [DictzipExt] are decompressed.
func Open(path string, options *ScannerOptions) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening staged file: %w", err)
	}

	var r io.ReadCloser = f
	if IsDictzip(path) {
		z, err := dictzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("opening staged file: %w", err)
		}
		r = &readCloser{Reader: z, Closer: f}
	}

	s, err := NewScanner(r, options)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}

// Scan advances the scanner to the next record. It returns false if the scan
// stops either by reaching the end of the file or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing staged file: %w", err)
	}
	return nil
}

// Record returns the current record. The returned slice is only valid until
// the next call to Scan.
func (s *Scanner) Record() []byte {
	return s.s.Bytes()[sizeLen:]
}

// splitRecord splits a size prefixed record.
func (s *Scanner) splitRecord(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if len(data) >= sizeLen {
		size := binary.BigEndian.Uint32(data)
		if uint64(size) > uint64(s.maxRecordSize) {
			return 0, nil, fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, size)
		}
		tokenSize := sizeLen + int(size)
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}

	if atEOF {
		return 0, nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(data))
	}

	// Request more data.
	return 0, nil, nil
}

// ReadAll reads all records from r and closes it. Records are copied.
func ReadAll(r io.ReadCloser, options *ScannerOptions) ([][]byte, error) {
	s, err := NewScanner(r, options)
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	defer s.Close()
	return readAll(s)
}

// ReadFile reads all records from the staged file at path.
func ReadFile(path string, options *ScannerOptions) ([][]byte, error) {
	s, err := Open(path, options)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return readAll(s)
}

func readAll(s *Scanner) ([][]byte, error) {
	var records [][]byte
	for s.Scan() {
		records = append(records, bytes.Clone(s.Record()))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
