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
	"io"
	"path/filepath"
	"strings"
)

// DictzipExt is the file extension of dictzip compressed staged files.
const DictzipExt = ".dz"

// IsDictzip reports whether path names a dictzip compressed staged file.
func IsDictzip(path string) bool {
	return strings.EqualFold(filepath.Ext(path), DictzipExt)
}

// readCloser reads from a decompressing reader and closes the file beneath it.
type readCloser struct {
	io.Reader
	io.Closer
}
