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

// Package glossary implements the entry layer of a dictionary conversion
// pipeline.
//
// A glossary is a stream of records. Each record is either:
//  1. A text [Entry]: a headword with optional alternate words mapped to one
//     or more definitions in plain text, HTML or XDXF.
//  2. A [Resource]: an auxiliary file, such as an image or audio clip, that
//     is referenced by definitions. Resources are kept in memory
//     ([InMemoryResource]) or spooled to disk ([SpooledResource]).
//
// Records can be exported to a compact raw form with ToRaw and rebuilt with
// [FromRaw]. The raw form is a tuple of the word bytes, the definition bytes
// and an optional format tag, optionally compressed with zlib. Raw records
// are what the pipeline stages to disk and sorts; [SortKeys] derives
// identical sort keys from live records and from their raw encodings.
//
// Multiple words or definitions are joined into a single string with '|'.
// Literal '|' characters inside a word are escaped as `\|`.
package glossary
