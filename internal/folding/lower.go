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

package folding

import (
	"golang.org/x/text/transform"
)

// ASCIILower maps the ASCII letters 'A' through 'Z' to lower case and copies
// every other byte unchanged.
type ASCIILower struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (ASCIILower) Transform(dst, src []byte, _ bool) (int, int, error) {
	n := len(src)
	var err error
	if len(dst) < n {
		n = len(dst)
		err = transform.ErrShortDst
	}
	for i := 0; i < n; i++ {
		c := src[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		dst[i] = c
	}
	return n, n, err
}
