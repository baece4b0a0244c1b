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

// ObjKind identifies the concrete shape of a heap-allocated Obj. The only
// kind produced at this stage is ObjString; the field exists so that a
// future collector (and future object kinds, such as functions or classes)
// can discriminate without changing the intrusive list representation.
type ObjKind uint8

// Heap object kinds.
const (
	ObjString ObjKind = iota
)

// Obj is a heap-allocated string object. Every Obj is linked into the
// owning VMState's object list via Next, append-at-head, so that a future
// collector can walk all live objects. Bytes holds the raw payload; Hash is
// the FNV-1a hash of Bytes, computed once at allocation and never changed.
//
// Only string objects exist at this stage, so the header and the string
// payload are a single type rather than an embedded-header hierarchy: there
// is nothing yet to discriminate at runtime beyond Kind.
type Obj struct {
	Kind ObjKind
	Next *Obj

	Bytes []byte
	Hash  uint32
}

// Len returns the length of the string payload in bytes.
func (o *Obj) Len() int { return len(o.Bytes) }

// String returns the string payload.
func (o *Obj) String() string { return string(o.Bytes) }

// fnv1a32 computes the 32 bit FNV-1a hash of data, per spec §4.3: offset
// basis 2166136261, prime 16777619, 32 bit wraparound multiply.
func fnv1a32(data []byte) uint32 {
	const (
		offsetBasis uint32 = 2166136261
		prime       uint32 = 16777619
	)
	h := offsetBasis
	for _, b := range data {
		h ^= uint32(b)
		h *= prime
	}
	return h
}

// newObj allocates a fresh, un-interned string object wrapping bytes. It
// does not link the object into any VMState's object list and does not
// consult any intern table; callers are responsible for both. Nothing in
// the package calls it at present: VMState.CopyString/TakeString build their
// Obj inline.
func newObj(bytes []byte) *Obj {
	return &Obj{
		Kind:  ObjString,
		Bytes: bytes,
		Hash:  fnv1a32(bytes),
	}
}
