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

// Options is the glossary format context used when converting records to and
// from their raw form.
type Options struct {
	// DefaultDefiFormat is the glossary's default definition format. Raw
	// records of entries in this format omit the format tag, and raw records
	// without a tag are decoded in this format.
	DefaultDefiFormat Format

	// EnableAlts splits decoded words and definitions on the '|' separator
	// into alternates.
	EnableAlts bool

	// Compress enables zlib compression of raw records. Decoders must be
	// given the same value as the encoder.
	Compress bool

	// TmpDataDir is an optional directory where resources are saved when
	// converted to raw records. If empty, raw resource records carry no path.
	TmpDataDir string
}

// DefaultOptions is the default glossary format context.
var DefaultOptions = &Options{
	DefaultDefiFormat: FormatPlain,
	EnableAlts:        true,
}

func (o *Options) defaultDefiFormat() Format {
	if o == nil || o.DefaultDefiFormat == 0 {
		return DefaultOptions.DefaultDefiFormat
	}
	return o.DefaultDefiFormat
}

func (o *Options) enableAlts() bool {
	if o == nil {
		return DefaultOptions.EnableAlts
	}
	return o.EnableAlts
}

func (o *Options) compress() bool {
	return o != nil && o.Compress
}

func (o *Options) tmpDataDir() string {
	if o == nil {
		return ""
	}
	return o.TmpDataDir
}
