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

// Package index implements a sorted array index over values with byte keys.
package index

import (
	"bytes"
	"slices"
	"sort"
)

type keyed[V any] struct {
	key   []byte
	value V
}

// Index is a generic sorted array index. Values are ordered by their keys
// using [bytes.Compare]; values with equal keys keep their original order.
type Index[V any] struct {
	index []keyed[V]
}

// New creates an index from the given values. key is called exactly once per
// value and the first error it returns aborts construction.
func New[V any](values []V, key func(V) ([]byte, error)) (*Index[V], error) {
	sorted := make([]keyed[V], 0, len(values))
	for _, v := range values {
		k, err := key(v)
		if err != nil {
			return nil, err
		}
		sorted = append(sorted, keyed[V]{key: k, value: v})
	}
	slices.SortStableFunc(sorted, func(a, b keyed[V]) int {
		return bytes.Compare(a.key, b.key)
	})

	return &Index[V]{
		index: sorted,
	}, nil
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.index)
}

// Values returns all values in key order.
func (idx *Index[V]) Values() []V {
	values := make([]V, len(idx.index))
	for i, k := range idx.index {
		values[i] = k.value
	}
	return values
}

// Search performs a binary search over the index and returns the values whose
// key equals key.
func (idx *Index[V]) Search(key []byte) []V {
	i, found := sort.Find(len(idx.index), func(i int) int {
		return bytes.Compare(key, idx.index[i].key)
	})
	if !found {
		return nil
	}

	var values []V
	for j := i; j < len(idx.index) && bytes.Equal(key, idx.index[j].key); j++ {
		values = append(values, idx.index[j].value)
	}
	return values
}
