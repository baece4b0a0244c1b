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

// Option configures a VMState at construction time, following the same
// functional-options shape the teacher uses for its VM Instance (DataSize,
// AddressSize, Input, Output, ...).
type Option func(*VMState)

// InternTableHint pre-sizes the string intern table's bucket array so that
// a compile unit with a known, large number of distinct string/identifier
// literals does not pay for repeated growth.
func InternTableHint(capacity int) Option {
	return func(s *VMState) {
		if capacity <= 0 {
			return
		}
		s.Strings.adjustCapacity(capacity)
	}
}

// VMState is the minimal process-wide state shared by a compile (and, in a
// future runtime, by execution): the head of the intrusive object list and
// the global string intern table (spec §2, §5).
type VMState struct {
	Objects *Obj
	Strings *StringTable
}

// NewState creates a fresh VMState with an empty object list and an empty
// intern table.
func NewState(opts ...Option) *VMState {
	s := &VMState{Strings: NewStringTable()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// link prepends o to the object list, per spec §3 ("append-at-head on
// allocation").
func (s *VMState) link(o *Obj) {
	o.Next = s.Objects
	s.Objects = o
}

// CopyString interns the byte sequence chars, which is borrowed from the
// caller (spec §4.3). If an equal string is already interned, the existing
// reference is returned and chars is not retained. Otherwise a fresh copy
// is allocated, linked into the object list, and inserted into the intern
// table with value Nil.
func (s *VMState) CopyString(chars []byte) *Obj {
	hash := fnv1a32(chars)
	if interned := s.Strings.FindString(chars, hash); interned != nil {
		return interned
	}
	owned := make([]byte, len(chars))
	copy(owned, chars)
	o := &Obj{Kind: ObjString, Bytes: owned, Hash: hash}
	s.link(o)
	s.Strings.Set(o, Nil)
	return o
}

// TakeString interns chars, which the caller has transferred ownership of
// (spec §4.3). If an equal string is already interned, chars is discarded
// (Go's GC reclaims it - there is no explicit free to call) and the
// existing reference is returned. Otherwise chars is wrapped directly,
// without copying, linked into the object list and inserted into the
// intern table.
func (s *VMState) TakeString(chars []byte) *Obj {
	hash := fnv1a32(chars)
	if interned := s.Strings.FindString(chars, hash); interned != nil {
		return interned
	}
	o := &Obj{Kind: ObjString, Bytes: chars, Hash: hash}
	s.link(o)
	s.Strings.Set(o, Nil)
	return o
}
