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
	"errors"
)

var (
	// ErrInvalidType indicates that a word or definition was not a string or
	// a non-empty list of strings.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidFormat indicates an unknown definition format.
	ErrInvalidFormat = errors.New("invalid definition format")

	// ErrDecode indicates that a raw record could not be decompressed,
	// deserialized or decoded as UTF-8.
	ErrDecode = errors.New("decoding raw entry")

	// ErrResourceIO indicates a filesystem failure while spooling or saving a
	// resource.
	ErrResourceIO = errors.New("resource io")
)
