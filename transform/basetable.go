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

// bases maps a 2-bit code to its nucleotide letter: 00->A, 01->C, 10->G, 11->T.
var bases = [4]byte{'A', 'C', 'G', 'T'}

// baseCodes maps an ASCII nucleotide letter back to its 2-bit code. Entries
// stay 0xFF for every byte that is not one of A, C, G or T.
var baseCodes = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 0xFF
	}
	for code, b := range bases {
		t[b] = byte(code)
	}
	return t
}()

// BaseCode returns the 2-bit code for an ASCII base letter (case sensitive,
// as the codec always emits and expects upper-case letters) and whether b
// is one of A, C, G or T.
func BaseCode(b byte) (byte, bool) {
	c := baseCodes[b]
	return c, c != 0xFF
}

// BaseLetter returns the ASCII letter for a 2-bit code in [0,3].
func BaseLetter(code byte) byte {
	return bases[code&3]
}
