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

// Package frame implements the trans-splicing framing stage: choosing a
// marker code disjoint from a ring's contents, interleaving it before
// fixed-size chunks of the ring, and the digest used to verify the ring's
// integrity once the markers are stripped back out.
package frame

import (
	"strconv"
	"strings"

	"github.com/chromoring/ccc/internal/errs"
	"github.com/zeebo/blake3"
)

// Info records the marker and digest chosen by Insert, which Remove needs
// to invert the framing and verify integrity.
type Info struct {
	// Marker is M, guaranteed absent from the pre-framed ring.
	Marker uint32
	// Digest is a short deterministic fingerprint of the pre-framed ring.
	Digest string
}

// Insert chooses a marker disjoint from ring's contents, computes a digest
// over ring, and returns ring with the marker interleaved before every
// chunkSize-sized chunk.
func Insert(ring []uint32, chunkSize int) ([]uint32, Info, error) {
	if chunkSize <= 0 {
		return nil, Info{}, &errs.ConfigError{Field: "ChunkSize", Msg: "must be a positive integer"}
	}

	marker := chooseMarker(ring)
	digest := Digest(ring)

	framed := make([]uint32, 0, len(ring)+len(ring)/chunkSize+1)

	for i := 0; i < len(ring); i += chunkSize {
		end := i + chunkSize
		if end > len(ring) {
			end = len(ring)
		}

		framed = append(framed, marker)
		framed = append(framed, ring[i:end]...)
	}

	return framed, Info{Marker: marker, Digest: digest}, nil
}

// Remove drops every occurrence of info.Marker from framed, verifies the
// digest of the surviving sequence's first ringLen elements against
// info.Digest, and returns those ringLen elements (the pre-framed ring).
//
// If the digest does not match, Remove always returns an *errs.IntegrityError
// alongside the ring it recovered; whether that is treated as fatal is a
// policy decision made by the caller (ccc.Codec's strict/lenient mode), not
// by this stage.
func Remove(framed []uint32, ringLen int, info Info) ([]uint32, error) {
	surviving := make([]uint32, 0, len(framed))
	for _, code := range framed {
		if code != info.Marker {
			surviving = append(surviving, code)
		}
	}

	end := ringLen
	if end > len(surviving) {
		end = len(surviving)
	}
	ringCodes := surviving[:end]

	actual := Digest(ringCodes)
	if actual != info.Digest {
		return ringCodes, &errs.IntegrityError{Expected: info.Digest, Actual: actual}
	}

	return ringCodes, nil
}

// chooseMarker returns max(ring)+1, bumped until it is absent from ring.
// Ring is empty is handled by returning 0.
func chooseMarker(ring []uint32) uint32 {
	var max uint32
	present := make(map[uint32]struct{}, len(ring))

	for _, code := range ring {
		present[code] = struct{}{}
		if code > max {
			max = code
		}
	}

	if len(ring) == 0 {
		return 0
	}

	marker := max + 1
	for {
		if _, ok := present[marker]; !ok {
			return marker
		}
		marker++
	}
}

// Digest computes a short, deterministic, order-sensitive fingerprint of
// codes, used only for equality comparison at decode time. It hashes the
// same comma-joined-decimal representation the codec's predecessor hashed,
// with BLAKE3 in place of a slower general-purpose cryptographic hash.
func Digest(codes []uint32) string {
	if len(codes) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(codes) * 6)

	for i, code := range codes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(code), 10))
	}

	hasher := blake3.New()
	hasher.Write([]byte(b.String()))
	return hexPrefix(hasher.Sum(nil), 4)
}

func hexPrefix(sum []byte, n int) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 0, n*2)
	for i := 0; i < n && i < len(sum); i++ {
		out = append(out, hexDigits[sum[i]>>4], hexDigits[sum[i]&0xF])
	}
	return string(out)
}
