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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-glossary"
)

// Writer writes records to a staged file.
type Writer struct {
	w     *bufio.Writer
	count int

	// closers are closed in order by Close.
	closers []io.Closer
}

// NewWriter returns a new Writer. Records are buffered; call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: bufio.NewWriter(w),
	}
}

// Create creates the staged file at path and returns a Writer for it. Files
// ending in [DictzipExt] are dictzip compressed. The Writer must be closed
// with Close.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating staged file: %w", err)
	}

	if !IsDictzip(path) {
		w := NewWriter(f)
		w.closers = []io.Closer{f}
		return w, nil
	}

	z, err := dictzip.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("creating staged file: %w", err)
	}
	w := NewWriter(z)
	w.closers = []io.Closer{z, f}
	return w, nil
}

// Write writes a single encoded record.
func (w *Writer) Write(rec []byte) error {
	if uint64(len(rec)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, len(rec))
	}

	var size [sizeLen]byte
	//nolint:gosec // size is bounds checked above.
	binary.BigEndian.PutUint32(size[:], uint32(len(rec)))
	if _, err := w.w.Write(size[:]); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	if _, err := w.w.Write(rec); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	w.count++
	return nil
}

// WriteRecord encodes r with opts and writes it.
func (w *Writer) WriteRecord(opts *glossary.Options, r glossary.Record) error {
	rec, err := r.ToRaw(opts)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", r.Word(), err)
	}
	return w.Write(rec)
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	return w.count
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing staged file: %w", err)
	}
	return nil
}

// Close flushes buffered records and closes the file opened by Create.
func (w *Writer) Close() error {
	err := w.Flush()
	for _, c := range w.closers {
		if cerr := c.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing staged file: %w", cerr))
		}
	}
	w.closers = nil
	return err
}
