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
	"strings"
)

// Format is a definition format. Formats are identified by a single byte tag
// which is also used in raw records.
type Format byte

const (
	// FormatPlain is plain text.
	FormatPlain = Format('m')

	// FormatHTML is HTML.
	FormatHTML = Format('h')

	// FormatXDXF is XDXF markup.
	FormatXDXF = Format('x')

	// FormatBinary marks a raw record that references a binary resource. It
	// is never valid as the format of a text entry.
	FormatBinary = Format('b')
)

// ParseFormat parses a format from its tag ("m", "h", "x", "b") or its name
// ("plain", "html", "xdxf", "binary").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "m", "plain":
		return FormatPlain, nil
	case "h", "html":
		return FormatHTML, nil
	case "x", "xdxf":
		return FormatXDXF, nil
	case "b", "binary":
		return FormatBinary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// IsText returns true if f is a valid text entry format.
func (f Format) IsText() bool {
	switch f {
	case FormatPlain, FormatHTML, FormatXDXF:
		return true
	default:
		return false
	}
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatHTML:
		return "html"
	case FormatXDXF:
		return "xdxf"
	case FormatBinary:
		return "binary"
	default:
		return fmt.Sprintf("Format(%q)", byte(f))
	}
}
