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

// Package testutil contains helpers for tests.
package testutil

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-glossary"
)

// MakeStaged creates the contents of a staged file holding records.
func MakeStaged(t *testing.T, records [][]byte) []byte {
	t.Helper()

	b := []byte{}
	for _, rec := range records {
		recLen := len(rec)
		if uint64(recLen) > math.MaxUint32 {
			t.Fatalf("record too long: %d", recLen)
		}
		//nolint:gosec // test code, size is bounds checked above.
		b = binary.BigEndian.AppendUint32(b, uint32(recLen))
		b = append(b, rec...)
	}
	return b
}

// EncodeRecords encodes records with opts.
func EncodeRecords(t *testing.T, opts *glossary.Options, records []glossary.Record) [][]byte {
	t.Helper()

	var encoded [][]byte
	for _, r := range records {
		b, err := r.ToRaw(opts)
		if err != nil {
			t.Fatalf("ToRaw(%q): %v", r.Word(), err)
		}
		encoded = append(encoded, b)
	}
	return encoded
}

// WriteStagedFile writes a staged file holding records to a new file in a
// temporary directory and returns its path.
func WriteStagedFile(t *testing.T, opts *glossary.Options, records []glossary.Record) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "records.stage")
	if err := os.WriteFile(path, MakeStaged(t, EncodeRecords(t, opts, records)), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// Entry returns a new text entry.
func Entry(t *testing.T, word, defi any, format glossary.Format) *glossary.Entry {
	t.Helper()

	e, err := glossary.NewEntry(word, defi, format, nil)
	if err != nil {
		t.Fatal(err)
	}
	return e
}
