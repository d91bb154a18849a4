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

package transform

import (
	"encoding/binary"
	"fmt"

	"github.com/chromoring/ccc/internal/dictionary"
	"github.com/chromoring/ccc/internal/errs"
)

// ResetCode is the distinguished code that forces both sides of the LZW
// coder to reset their dictionaries. It sits outside the 16-bit range so
// that it can never alias a learned code, which is always < dictionary.MaxDict.
const ResetCode uint32 = dictionary.MaxDict

// LZWCodec is the reset-aware LZW coder described in the specification's
// §4.2. It implements ccc.ByteTransform: Forward consumes base-alphabet
// bytes and writes one 32-bit little-endian code word per emitted code;
// Inverse is the mirror. Codes need 17 bits to represent ResetCode, so a
// fixed-width byte encoding needs at least 32-bit slots, per the
// specification's design note.
type LZWCodec struct {
	// Strict controls how Forward treats a byte that is not a base letter:
	// true returns a FormatError, false skips the byte. Inverse does not
	// consult Strict: on an out-of-dictionary code it always returns an
	// InvalidCodeError, and whether partial output is discarded is a
	// policy decision made by ccc.Codec, not this stateless transform.
	Strict bool
}

// NewLZWCodec creates an LZWCodec with the given strictness.
func NewLZWCodec(strict bool) *LZWCodec {
	return &LZWCodec{Strict: strict}
}

// MaxEncodedLen bounds the number of codes at srcLen plus the number of
// resets a stream of that length could ever force, then converts to bytes
// (4 per code word).
func (c *LZWCodec) MaxEncodedLen(srcLen int) int {
	if srcLen <= 0 {
		return 0
	}

	resets := srcLen/dictionary.MaxDict + 2
	return (srcLen + resets) * 4
}

// Forward compresses base-alphabet bytes in src into little-endian 32-bit
// code words written to dst.
func (c *LZWCodec) Forward(src, dst []byte) (uint, uint, error) {
	if len(src) == 0 {
		return 0, 0, nil
	}

	enc := dictionary.NewEncoder()
	codes := make([]uint32, 0, len(src))

	haveW := false
	var w int32

	for i := 0; i < len(src); i++ {
		symCode, ok := BaseCode(src[i])
		if !ok {
			if c.Strict {
				return 0, 0, &errs.FormatError{Stage: "lzw-encode", Msg: fmt.Sprintf("invalid base byte %q at index %d", src[i], i)}
			}
			continue
		}

		if !haveW {
			w = int32(symCode)
			haveW = true
			continue
		}

		if code, found := enc.Lookup(w, symCode); found {
			w = int32(code)
			continue
		}

		codes = append(codes, uint32(w))

		if _, inserted := enc.Insert(w, symCode); !inserted {
			codes = append(codes, ResetCode)
			enc.Reset()
		}

		w = int32(symCode)
	}

	if haveW {
		codes = append(codes, uint32(w))
	}

	need := len(codes) * 4
	if len(dst) < need {
		return 0, 0, fmt.Errorf("ccc/transform: lzw codec destination too small: need %d, have %d", need, len(dst))
	}

	for i, code := range codes {
		binary.LittleEndian.PutUint32(dst[i*4:], code)
	}

	return uint(len(src)), uint(need), nil
}

// Inverse decompresses little-endian 32-bit code words in src back into
// base-alphabet bytes written to dst.
//
// On an out-of-dictionary code, Inverse returns however many bytes it
// managed to decode before the failure together with an
// *errs.InvalidCodeError; whether that counts as a hard failure or an
// acceptable partial result is a policy decision made by the caller
// (ccc.Codec), not by this transform.
func (c *LZWCodec) Inverse(src, dst []byte) (uint, uint, error) {
	if len(src) == 0 {
		return 0, 0, nil
	}

	if len(src)%4 != 0 {
		return 0, 0, fmt.Errorf("ccc/transform: lzw codec source length %d is not a multiple of 4", len(src))
	}

	codes := make([]uint32, len(src)/4)
	for i := range codes {
		codes[i] = binary.LittleEndian.Uint32(src[i*4:])
	}

	if len(codes) > 0 && codes[0] == ResetCode {
		return 0, 0, &errs.FormatError{Stage: "lzw-decode", Msg: "first code must not be the reset marker"}
	}

	dec := dictionary.NewDecoder()
	out := make([]byte, 0, len(dst))

	havePrev := false
	var prevCode uint32

	for idx, code := range codes {
		if code == ResetCode {
			dec.Reset()
			havePrev = false
			continue
		}

		if code > ResetCode {
			n := copy(dst, out)
			return uint(idx * 4), uint(n), &errs.FormatError{Stage: "lzw-decode", Msg: fmt.Sprintf("code %d at index %d is out of range", code, idx)}
		}

		// entry holds the expansion as raw 2-bit symbol values (0-3), the
		// dictionary's native alphabet; it is translated to base letters
		// only when appended to out below.
		var entry []byte

		switch {
		case dec.Contains(code):
			entry = dec.Expand(code, nil)
		case havePrev && code == dec.Next():
			prevEntry := dec.Expand(prevCode, nil)
			entry = append(prevEntry, prevEntry[0])
		default:
			n := copy(dst, out)
			return uint(idx * 4), uint(n), &errs.InvalidCodeError{Code: code, Index: idx}
		}

		for _, sym := range entry {
			out = append(out, BaseLetter(sym))
		}

		if havePrev && !dec.Full() {
			dec.Insert(int32(prevCode), entry[0])
		}

		prevCode = code
		havePrev = true
	}

	n := copy(dst, out)
	return uint(len(src)), uint(n), nil
}
