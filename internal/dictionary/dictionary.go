/*
Copyright 2026 The ChromoRing Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package dictionary implements the LZW dictionary backing
// ccc/transform.LZWCodec. Per the specification's dictionary-representation
// design note, entries are stored as (parentCode, symbol) pairs rather than
// materialized strings: the encoder addresses its table directly by
// parent/symbol so lookup never hashes or allocates, and the decoder only
// walks the parent chain to build an output string when it actually needs
// to emit bytes.
package dictionary

// MaxDict is the maximum number of entries either dictionary may hold
// before Reset must be called.
const MaxDict = 65536

// NoParent is the sentinel parent code representing the empty prefix. A
// symbol whose parent is NoParent is one of the four seed entries.
const NoParent = -1

// Encoder is the encode-side dictionary: prefix (parentCode, symbol) pairs
// mapped to the code that was assigned to them.
//
// The table is addressed directly (index = parentCode*4 + symbol) instead
// of hashed, so every lookup and insert is O(1) with no collisions. Reset
// is O(1): entries are invalidated by bumping a generation counter instead
// of by clearing the backing arrays, so the large backing slices are
// reused across resets instead of being reallocated.
type Encoder struct {
	codes  []int32
	gen    []uint32
	curGen uint32
	next   uint32
}

// NewEncoder creates an Encoder with its dictionary already reset to the
// four seed entries.
func NewEncoder() *Encoder {
	e := &Encoder{
		codes: make([]int32, MaxDict*4),
		gen:   make([]uint32, MaxDict*4),
	}
	e.Reset()
	return e
}

// Reset invalidates every learned entry and restarts the next-code counter
// at 4, without touching the backing storage.
func (e *Encoder) Reset() {
	e.curGen++
	e.next = 4
}

// Next returns the code that would be assigned to the next inserted entry.
func (e *Encoder) Next() uint32 { return e.next }

// Full reports whether the dictionary has reached MaxDict entries.
func (e *Encoder) Full() bool { return e.next >= MaxDict }

// Lookup returns the code assigned to (parent, symbol) and whether it
// exists. parent == NoParent looks up one of the four seed entries, which
// always exist and map symbol directly to its own code.
func (e *Encoder) Lookup(parent int32, symbol byte) (uint32, bool) {
	if parent == NoParent {
		return uint32(symbol), true
	}

	idx := uint32(parent)*4 + uint32(symbol)
	if e.gen[idx] != e.curGen {
		return 0, false
	}
	return uint32(e.codes[idx]), true
}

// Insert assigns the next code to (parent, symbol) and returns it. It is a
// no-op returning (0, false) if the dictionary is Full.
func (e *Encoder) Insert(parent int32, symbol byte) (uint32, bool) {
	if e.Full() {
		return 0, false
	}

	idx := uint32(parent)*4 + uint32(symbol)
	code := e.next
	e.codes[idx] = int32(code)
	e.gen[idx] = e.curGen
	e.next++
	return code, true
}

// Decoder is the decode-side dictionary: code to (parentCode, symbol).
type Decoder struct {
	parent []int32
	symbol []byte
	next   uint32
}

// NewDecoder creates a Decoder with its dictionary already reset to the
// four seed entries.
func NewDecoder() *Decoder {
	d := &Decoder{
		parent: make([]int32, MaxDict),
		symbol: make([]byte, MaxDict),
	}
	d.Reset()
	return d
}

// Reset restarts the next-code counter at 4. Entries below 4 (the seed
// codes) are implicit and never consulted through parent/symbol.
func (d *Decoder) Reset() {
	d.next = 4
}

// Next returns the code that would be assigned to the next inserted entry.
func (d *Decoder) Next() uint32 { return d.next }

// Full reports whether the dictionary has reached MaxDict entries.
func (d *Decoder) Full() bool { return d.next >= MaxDict }

// Contains reports whether code has a known expansion: either one of the
// four seed codes or a learned entry below Next.
func (d *Decoder) Contains(code uint32) bool {
	return code < 4 || code < d.next
}

// Insert records that the next code expands to parent's expansion followed
// by symbol. It is a no-op if the dictionary is Full.
func (d *Decoder) Insert(parent int32, symbol byte) {
	if d.Full() {
		return
	}

	d.parent[d.next] = parent
	d.symbol[d.next] = symbol
	d.next++
}

// FirstSymbol returns the first symbol of code's expansion without
// materializing the whole string, used for the KwKwK edge case.
func (d *Decoder) FirstSymbol(code uint32) byte {
	for code >= 4 {
		code = uint32(d.parent[code])
	}
	return byte(code)
}

// Expand appends code's expansion to dst and returns the extended slice.
// It walks the parent chain from code down to a seed code, then reverses
// the newly appended segment in place, so no intermediate string is ever
// materialized and no allocation happens beyond dst's own growth.
func (d *Decoder) Expand(code uint32, dst []byte) []byte {
	start := len(dst)

	for code >= 4 {
		dst = append(dst, d.symbol[code])
		code = uint32(d.parent[code])
	}

	dst = append(dst, byte(code))

	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}

	return dst
}
