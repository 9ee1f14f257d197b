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

package stage_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/internal/testutil"
	"github.com/ianlewis/go-glossary/stage"
)

// TestScanner tests Scanner.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		records  [][]byte
		expected [][]byte
	}{
		{
			name:     "empty",
			records:  nil,
			expected: nil,
		},
		{
			name:     "single",
			records:  [][]byte{[]byte("hoge")},
			expected: [][]byte{[]byte("hoge")},
		},
		{
			name: "multiple with empty record",
			records: [][]byte{
				[]byte("hoge"),
				{},
				bytes.Repeat([]byte("fuga"), 100000),
			},
			expected: [][]byte{
				[]byte("hoge"),
				{},
				bytes.Repeat([]byte("fuga"), 100000),
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b := testutil.MakeStaged(t, test.records)
			records, err := stage.ReadAll(io.NopCloser(bytes.NewReader(b)), nil)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if diff := cmp.Diff(test.expected, records); diff != "" {
				t.Fatalf("ReadAll (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestScanner_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		options *stage.ScannerOptions
		errIs   error
	}{
		{
			name:  "truncated size",
			data:  []byte{0, 0},
			errIs: stage.ErrTruncated,
		},
		{
			name:  "truncated record",
			data:  []byte{0, 0, 0, 5, 'a', 'b'},
			errIs: stage.ErrTruncated,
		},
		{
			name:    "too large",
			data:    []byte{0, 0, 0, 5, 'a', 'b', 'c', 'd', 'e'},
			options: &stage.ScannerOptions{MaxRecordSize: 4},
			errIs:   stage.ErrRecordTooLarge,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := stage.ReadAll(io.NopCloser(bytes.NewReader(test.data)), test.options)
			if !errors.Is(err, test.errIs) {
				t.Fatalf("ReadAll: want %v, got %v", test.errIs, err)
			}
		})
	}
}

func TestNewScanner_invalidOptions(t *testing.T) {
	t.Parallel()

	_, err := stage.NewScanner(io.NopCloser(bytes.NewReader(nil)), &stage.ScannerOptions{})
	if err == nil {
		t.Fatalf("NewScanner: want error, got nil")
	}
}

// closeTracker records whether Close was called.
type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestReadAll_invalidOptionsCloses(t *testing.T) {
	t.Parallel()

	r := &closeTracker{Reader: bytes.NewReader(nil)}
	if _, err := stage.ReadAll(r, &stage.ScannerOptions{MaxRecordSize: -1}); err == nil {
		t.Fatalf("ReadAll: want error, got nil")
	}
	if !r.closed {
		t.Errorf("ReadAll: reader not closed")
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	records := [][]byte{
		[]byte("hoge"),
		{},
		bytes.Repeat([]byte("fuga"), 100000),
	}

	tests := []struct {
		name     string
		fileName string
		dictzip  bool
	}{
		{
			name:     "plain",
			fileName: "records.stage",
		},
		{
			name:     "dictzip",
			fileName: "records.stage.dz",
			dictzip:  true,
		},
		{
			name:     "dictzip upper case",
			fileName: "RECORDS.STAGE.DZ",
			dictzip:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), test.fileName)
			if got := stage.IsDictzip(path); got != test.dictzip {
				t.Fatalf("IsDictzip: want %v, got %v", test.dictzip, got)
			}

			w, err := stage.Create(path)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			for _, rec := range records {
				if err := w.Write(rec); err != nil {
					t.Fatalf("Write: %v", err)
				}
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			plain := testutil.MakeStaged(t, records)
			if got := bytes.Equal(plain, raw); got == test.dictzip {
				t.Fatalf("file contents equal to uncompressed records: %v", got)
			}

			got, err := stage.ReadFile(path, nil)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if diff := cmp.Diff(records, got); diff != "" {
				t.Fatalf("records (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestWriter tests that records written by Writer can be read back as
// glossary records.
func TestWriter(t *testing.T) {
	t.Parallel()

	opts := &glossary.Options{
		DefaultDefiFormat: glossary.FormatPlain,
		EnableAlts:        true,
		Compress:          true,
	}
	records := []glossary.Record{
		testutil.Entry(t, []string{"cat", "kitty"}, "a small animal", glossary.FormatPlain),
		testutil.Entry(t, "dog", "<b>woof</b>", glossary.FormatHTML),
		glossary.NewInMemoryResource("a.png", []byte("png")),
	}

	var buf bytes.Buffer
	w := stage.NewWriter(&buf)
	for _, r := range records {
		if err := w.WriteRecord(opts, r); err != nil {
			t.Fatalf("WriteRecord: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := w.Count(), len(records); got != want {
		t.Fatalf("Count: want %d, got %d", want, got)
	}

	// The writer and the test helper agree on the file format.
	want := testutil.MakeStaged(t, testutil.EncodeRecords(t, opts, records))
	if diff := cmp.Diff(want, buf.Bytes()); diff != "" {
		t.Fatalf("staged file (-want, +got):\n%s", diff)
	}

	s, err := stage.NewScanner(io.NopCloser(&buf), nil)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	defer s.Close()

	var words []string
	var formats []glossary.Format
	for s.Scan() {
		r, err := glossary.FromRaw(opts, s.Record())
		if err != nil {
			t.Fatalf("FromRaw: %v", err)
		}
		words = append(words, r.Word())
		formats = append(formats, r.DefiFormat())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	if diff := cmp.Diff([]string{"cat|kitty", "dog", "a.png"}, words); diff != "" {
		t.Fatalf("words (-want, +got):\n%s", diff)
	}
	wantFormats := []glossary.Format{glossary.FormatPlain, glossary.FormatHTML, glossary.FormatBinary}
	if diff := cmp.Diff(wantFormats, formats); diff != "" {
		t.Fatalf("formats (-want, +got):\n%s", diff)
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	path := testutil.WriteStagedFile(t, nil, []glossary.Record{
		testutil.Entry(t, "hoge", "fuga", 0),
	})

	s, err := stage.Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if !s.Scan() {
		t.Fatalf("Scan: want true, err %v", s.Err())
	}
	r, err := glossary.FromRaw(nil, s.Record())
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if diff := cmp.Diff("hoge", r.Word()); diff != "" {
		t.Fatalf("Word (-want, +got):\n%s", diff)
	}
	if s.Scan() {
		t.Fatalf("Scan: want false")
	}
}
