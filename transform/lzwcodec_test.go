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
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/chromoring/ccc/internal/dictionary"
)

func toBases(t *testing.T, rng *rand.Rand, n int) []byte {
	t.Helper()
	out := make([]byte, n)
	for i := range out {
		out[i] = BaseLetter(byte(rng.Intn(4)))
	}
	return out
}

func roundTripLZW(t *testing.T, dna []byte) []byte {
	t.Helper()

	codec := NewLZWCodec(true)
	dst := make([]byte, codec.MaxEncodedLen(len(dna)))
	_, n, err := codec.Forward(dna, dst)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	codeBytes := dst[:n]

	out := make([]byte, len(dna))
	_, m, err := codec.Inverse(codeBytes, out)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	return out[:m]
}

func TestLZWCodecRoundTripEmpty(t *testing.T) {
	out := roundTripLZW(t, nil)
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(out))
	}
}

func TestLZWCodecRoundTripSingleBase(t *testing.T) {
	out := roundTripLZW(t, []byte("A"))
	if string(out) != "A" {
		t.Fatalf("got %q, want %q", out, "A")
	}
}

func TestLZWCodecRoundTripRepetitive(t *testing.T) {
	dna := bytes.Repeat([]byte("ACGT"), 5000)
	out := roundTripLZW(t, dna)
	if !bytes.Equal(out, dna) {
		t.Fatalf("repetitive round trip mismatch, lengths %d vs %d", len(out), len(dna))
	}
}

func TestLZWCodecRoundTripKwKwK(t *testing.T) {
	// The classic LZW boundary case: a pattern whose second occurrence's
	// extension is not yet in the dictionary when first looked up.
	dna := []byte("ACACACA")
	out := roundTripLZW(t, dna)
	if !bytes.Equal(out, dna) {
		t.Fatalf("KwKwK round trip mismatch: got %q, want %q", out, dna)
	}
}

func TestLZWCodecRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{0, 1, 4, 100, 5000} {
		dna := toBases(t, rng, n)
		out := roundTripLZW(t, dna)
		if !bytes.Equal(out, dna) {
			t.Fatalf("length %d: round trip mismatch", n)
		}
	}
}

func TestLZWCodecForcesResetOnDictionarySaturation(t *testing.T) {
	// A long random input (each emitted code adds one entry) drives the
	// dictionary past MaxDict entries, forcing at least one reset code
	// into the stream.
	rng := rand.New(rand.NewSource(11))
	dna := toBases(t, rng, dictionary.MaxDict*8)

	codec := NewLZWCodec(true)
	dst := make([]byte, codec.MaxEncodedLen(len(dna)))
	_, n, err := codec.Forward(dna, dst)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	sawReset := false
	for i := 0; i+4 <= int(n); i += 4 {
		if binary.LittleEndian.Uint32(dst[i:]) == ResetCode {
			sawReset = true
			break
		}
	}
	if !sawReset {
		t.Fatalf("expected at least one reset code in a stream long enough to saturate the dictionary")
	}

	out := make([]byte, len(dna))
	_, m, err := codec.Inverse(dst[:n], out)
	if err != nil {
		t.Fatalf("Inverse after reset: %v", err)
	}
	if !bytes.Equal(out[:m], dna) {
		t.Fatalf("round trip mismatch across a reset boundary")
	}
}

func TestLZWCodecInverseRejectsLeadingResetCode(t *testing.T) {
	codec := NewLZWCodec(true)
	src := make([]byte, 4)
	binary.LittleEndian.PutUint32(src, ResetCode)

	dst := make([]byte, 4)
	_, _, err := codec.Inverse(src, dst)
	if err == nil {
		t.Fatalf("expected FormatError when the stream opens with the reset marker")
	}
}

func TestLZWCodecInverseRejectsUnknownCode(t *testing.T) {
	codec := NewLZWCodec(true)
	src := make([]byte, 8)
	binary.LittleEndian.PutUint32(src[0:], 0)   // valid: base code for 'A'
	binary.LittleEndian.PutUint32(src[4:], 500) // never inserted

	dst := make([]byte, 8)
	_, n, err := codec.Inverse(src, dst)
	if err == nil {
		t.Fatalf("expected InvalidCodeError for an unknown code")
	}
	if n != 1 {
		t.Fatalf("expected 1 byte of partial output before the failure, got %d", n)
	}
}
