// This file is part of loxvm - https://github.com/db47h/loxvm
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

// tableMaxLoad is the load factor above which the table must grow.
const tableMaxLoad = 0.75

// tombstoneValue is the sentinel stored in a deleted entry's Value slot.
// Any value distinct from Nil would do; spec §4.3/§9 documents Bool(true)
// as the chosen encoding.
var tombstoneValue = Bool(true)

// entry is one slot of a StringTable's bucket array.
type entry struct {
	key   *Obj
	value Value
}

func (e *entry) empty() bool     { return e.key == nil && e.value.IsNil() }
func (e *entry) tombstone() bool { return e.key == nil && !e.value.IsNil() }

// StringTable is an open-addressed hash table with linear probing and
// tombstone-based deletion, keyed by interned string objects (spec §3,
// §4.4). It is the table that VMState.CopyString/TakeString consult to
// guarantee that equal string payloads share a single heap object.
type StringTable struct {
	count   int
	entries []entry
}

// NewStringTable returns an empty StringTable.
func NewStringTable() *StringTable {
	return &StringTable{}
}

// Count returns the number of live entries.
func (t *StringTable) Count() int { return t.count }

// Capacity returns the current bucket array size.
func (t *StringTable) Capacity() int { return len(t.entries) }

// findEntry implements the probing sequence of spec §4.4: start at hash mod
// capacity, walk forward, returning either a hit or the first reusable slot
// (a recorded tombstone, or else the terminating empty slot).
func findEntry(entries []entry, key *Obj) *entry {
	capacity := len(entries)
	index := int(key.Hash) % capacity
	var tombstone *entry
	for {
		e := &entries[index]
		switch {
		case e.empty():
			if tombstone != nil {
				return tombstone
			}
			return e
		case e.tombstone():
			if tombstone == nil {
				tombstone = e
			}
		case e.key == key:
			return e
		}
		index = (index + 1) % capacity
	}
}

// adjustCapacity grows the table to newCapacity, rehashing live entries
// only; tombstones are dropped and the count recomputed, per spec §4.4.
func (t *StringTable) adjustCapacity(newCapacity int) {
	grown := make([]entry, newCapacity)
	for i := range grown {
		grown[i] = entry{}
	}
	count := 0
	for _, e := range t.entries {
		if e.key == nil {
			continue
		}
		dst := findEntry(grown, e.key)
		dst.key = e.key
		dst.value = e.value
		count++
	}
	t.entries = grown
	t.count = count
}

// Set inserts or updates key's value, growing the table first if the
// insertion would exceed the load factor. It returns true iff key was not
// already present.
//
// Count tracks live entries only (Delete decrements it), so both a fresh
// empty slot and a reused tombstone slot represent a non-live -> live
// transition and both increment Count; clox increments only for the
// empty case because its count includes tombstones already.
func (t *StringTable) Set(key *Obj, value Value) bool {
	if float64(t.count+1) > float64(len(t.entries))*tableMaxLoad {
		capacity := valueArrayGrow(len(t.entries))
		t.adjustCapacity(capacity)
	}
	e := findEntry(t.entries, key)
	isNewKey := e.key == nil
	if isNewKey {
		t.count++
	}
	e.key = key
	e.value = value
	return isNewKey
}

// Get looks up key and returns its value and whether it was present.
func (t *StringTable) Get(key *Obj) (Value, bool) {
	if t.count == 0 {
		return Nil, false
	}
	e := findEntry(t.entries, key)
	if e.key == nil {
		return Nil, false
	}
	return e.value, true
}

// Delete removes key, replacing the entry with a tombstone. Returns true
// iff the key was present.
//
// Count is decremented here: unlike clox (where count deliberately
// includes tombstones, to keep the probe-sequence-saturation growth check
// in Set simple), spec §8's table invariant requires Count to report the
// number of live entries only, matching adjustCapacity's own live-only
// recomputation.
func (t *StringTable) Delete(key *Obj) bool {
	if t.count == 0 {
		return false
	}
	e := findEntry(t.entries, key)
	if e.key == nil {
		return false
	}
	e.key = nil
	e.value = tombstoneValue
	t.count--
	return true
}

// FindString is the specialized lookup used by interning: unlike Set/Get/
// Delete, it compares candidates by content (length, hash, byte-for-byte)
// rather than by pointer identity, since the caller does not yet have an
// *Obj to compare against. Returns nil if no match exists.
func (t *StringTable) FindString(bytes []byte, hash uint32) *Obj {
	if t.count == 0 {
		return nil
	}
	capacity := len(t.entries)
	index := int(hash) % capacity
	for {
		e := &t.entries[index]
		switch {
		case e.empty():
			return nil
		case e.key != nil && e.key.Hash == hash && len(e.key.Bytes) == len(bytes) && string(e.key.Bytes) == string(bytes):
			return e.key
		}
		index = (index + 1) % capacity
	}
}
