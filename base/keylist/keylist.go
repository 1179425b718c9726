// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., column names) to indexes,
to support fast lookup by name while keeping insertion order.
It is used as the column registry of tables and data containers,
where registration order defines iteration order and duplicate
names must be rejected.
*/
package keylist

import (
	"fmt"
	"slices"
)

// List implements an ordered list (slice) of Values,
// with a map from a key to indexes.
// The zero value is ready to use.
type List[K comparable, V any] struct {

	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values].
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List]. The zero value
// is usable without initialization, so this is
// just a convenience.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

func (kl *List[K, V]) makeIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// Reset removes all elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Add adds an item to the end of the list with the given key.
// An error is returned, and nothing is added,
// if the key is already on the list.
// See [List.Set] for a version that replaces.
func (kl *List[K, V]) Add(key K, val V) error {
	if kl.indexes == nil {
		kl.makeIndexes()
	}
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// Set sets the given key to the given value, appending
// if not already present, and otherwise replacing in place.
// This is the same semantics as a Go map.
func (kl *List[K, V]) Set(key K, val V) {
	if kl.indexes == nil {
		kl.makeIndexes()
	}
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// At returns the value for the given key,
// with a zero value for a missing key.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value for the given key,
// and false for a missing key.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, or -1 if missing.
func (kl *List[K, V]) IndexByKey(key K) int {
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByKey deletes the item with the given key,
// returning false if it is not found.
// This is relatively slow because it regenerates the index map.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx, ok := kl.indexes[key]
	if !ok {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	kl.makeIndexes()
	return true
}

// Clone returns a shallow copy of the list: the Keys and
// Values slices are new, but the values themselves are copied by assignment.
func (kl *List[K, V]) Clone() *List[K, V] {
	cp := &List[K, V]{
		Keys:   slices.Clone(kl.Keys),
		Values: slices.Clone(kl.Values),
	}
	cp.makeIndexes()
	return cp
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	sv := "{"
	for i, v := range kl.Values {
		sv += fmt.Sprintf("%v: %v, ", kl.Keys[i], v)
	}
	return sv + "}"
}
