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

// Package stats implements the diagnostic-only Stats interface contract
// from the specification's §6: compression ratios, bits-per-base, Shannon
// entropy, a theoretical minimum size and a Shannon-efficiency figure.
// Nothing in this package participates in Compress or Decompress; it is a
// pure function of already-produced artifacts.
package stats

import (
	"bytes"
	"math"
	"math/bits"

	"github.com/chromoring/ccc"
	"github.com/dchest/siphash"
	"github.com/klauspost/compress/flate"
	"github.com/pierrec/lz4/v4"
)

// ReferenceRatios reports the compression ratio (compressed/original) the
// original input achieved under two general-purpose baselines, purely so a
// caller can see where this codec sits relative to them. The
// specification's stance that this codec is not designed to beat
// general-purpose compressors is a Non-goal about the algorithm, not about
// measuring against one.
type ReferenceRatios struct {
	Flate float64
	LZ4   float64
}

// Stats is the diagnostic record returned by Compute.
type Stats struct {
	OriginalSizeBytes        int
	CompressedSizeBytes      int
	CompressionRatio         float64
	SpaceSavingsPercent      float64
	BitsPerBase              float64
	BitsPerCode              int
	TotalCodes               int
	MaxCodeValue             uint32
	OriginalEntropy          float64
	CompressedEntropy        float64
	EntropyReduction         float64
	TheoreticalMinimumSize   float64
	ShannonEfficiency        float64
	CompressionEffectiveness float64

	// ReferenceRatios and Fingerprint are additions beyond the
	// specification's literal contract, both purely informational.
	ReferenceRatios ReferenceRatios
	// Fingerprint is a keyed hash of the framed code stream, distinct
	// from frame.Digest, useful only for cheaply telling two Stats
	// values apart. It is never consulted by Decompress.
	Fingerprint uint64
}

// fingerprintKey is a fixed key: Fingerprint is a comparison aid, not a
// security mechanism, so a stable, non-secret key keeps it reproducible
// across processes.
var fingerprintKey0, fingerprintKey1 uint64 = 0x63636364656d6f, 0x6473746174736b

// Compute derives diagnostics from an original input, the framed code
// stream Compress produced from it, and the Metadata Compress returned.
// It performs no compression or decompression of its own.
func Compute(original []byte, codes []uint32, meta ccc.Metadata) Stats {
	originalSize := len(original)

	var maxCode uint32
	for _, c := range codes {
		if c > maxCode {
			maxCode = c
		}
	}

	bitsPerCode := 16
	compressedSize := 0

	if len(codes) > 0 {
		bitsPerCode = roundUpToByte(bits.Len32(maxCode))
		if bitsPerCode < 16 {
			bitsPerCode = 16
		}
		compressedSize = (len(codes) * bitsPerCode) / 8
	}

	dnaLength := originalSize * 4

	originalEntropy := shannonEntropy(original)
	compressedEntropy := shannonEntropy(littleEndianExpand(codes))
	entropyReduction := originalEntropy - compressedEntropy

	var theoreticalMin float64
	if originalSize > 0 {
		theoreticalMin = originalEntropy * float64(originalSize) / 8
	}

	var actualRatio, shannonRatio float64
	if originalSize > 0 {
		actualRatio = float64(compressedSize) / float64(originalSize)
		shannonRatio = theoreticalMin / float64(originalSize)
	}

	var shannonEfficiency float64
	if compressedSize > 0 {
		shannonEfficiency = theoreticalMin / float64(compressedSize)
		if shannonEfficiency > 1.0 {
			shannonEfficiency = 1.0
		}
	}

	var effectiveness float64
	switch {
	case shannonRatio > 0 && actualRatio > shannonRatio:
		effectiveness = shannonRatio / actualRatio
	case shannonRatio > 0 && actualRatio <= shannonRatio:
		effectiveness = 1.0
	default:
		effectiveness = 0.0
	}
	effectiveness = math.Min(1.0, math.Max(0.0, effectiveness))

	var bitsPerBase float64
	if dnaLength > 0 {
		bitsPerBase = float64(compressedSize*8) / float64(dnaLength)
	}

	return Stats{
		OriginalSizeBytes:        originalSize,
		CompressedSizeBytes:      compressedSize,
		CompressionRatio:         actualRatio,
		SpaceSavingsPercent:      spaceSavings(originalSize, actualRatio),
		BitsPerBase:              bitsPerBase,
		BitsPerCode:              bitsPerCode,
		TotalCodes:               len(codes),
		MaxCodeValue:             maxCode,
		OriginalEntropy:          originalEntropy,
		CompressedEntropy:        compressedEntropy,
		EntropyReduction:         entropyReduction,
		TheoreticalMinimumSize:   theoreticalMin,
		ShannonEfficiency:        shannonEfficiency,
		CompressionEffectiveness: effectiveness,
		ReferenceRatios:          referenceRatios(original),
		Fingerprint:              siphash.Hash(fingerprintKey0, fingerprintKey1, littleEndianExpand(codes)),
	}
}

func spaceSavings(originalSize int, ratio float64) float64 {
	if originalSize == 0 {
		return 0
	}
	return (1 - ratio) * 100
}

func roundUpToByte(bitLen int) int {
	return ((bitLen + 7) / 8) * 8
}

// shannonEntropy computes the Shannon entropy, in bits per byte, of data's
// byte-value distribution.
func shannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var freq [256]int
	for _, b := range data {
		freq[b]++
	}

	total := float64(len(data))
	entropy := 0.0

	for _, count := range freq {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}

	return entropy
}

// littleEndianExpand mirrors the reference implementation's
// code.to_bytes((code.bit_length()+7)//8 or 1, 'little') expansion: each
// code contributes only as many bytes as it needs, not a fixed width.
func littleEndianExpand(codes []uint32) []byte {
	out := make([]byte, 0, len(codes)*2)

	for _, code := range codes {
		n := (bits.Len32(code) + 7) / 8
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			out = append(out, byte(code>>(8*uint(i))))
		}
	}

	return out
}

func referenceRatios(original []byte) ReferenceRatios {
	if len(original) == 0 {
		return ReferenceRatios{}
	}

	var buf bytes.Buffer
	if w, err := flate.NewWriter(&buf, flate.BestCompression); err == nil {
		_, _ = w.Write(original)
		_ = w.Close()
	}

	flateRatio := float64(buf.Len()) / float64(len(original))

	bound := lz4.CompressBlockBound(len(original))
	dst := make([]byte, bound)
	written, err := lz4.CompressBlock(original, dst, nil)

	var lz4Ratio float64
	if err == nil && written > 0 {
		lz4Ratio = float64(written) / float64(len(original))
	} else {
		lz4Ratio = 1.0
	}

	return ReferenceRatios{Flate: flateRatio, LZ4: lz4Ratio}
}
