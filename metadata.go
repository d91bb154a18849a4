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

package ccc

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Metadata is produced alongside the framed code stream by Compress and
// must be carried to Decompress verbatim. It is sufficient, on its own, to
// drive Decompress without consulting the compressed stream's contents
// beyond the codes themselves.
type Metadata struct {
	// OriginalSize is N, the input byte count.
	OriginalSize int `cbor:"n"`
	// OriginalBits is B, the exact bit-string length (8*N unless the
	// caller drove transform.BaseCodec directly with a non-whole-byte
	// bit count for testing).
	OriginalBits int `cbor:"b"`
	// DNALength is L, the base-string length.
	DNALength int `cbor:"l"`
	// CodeLength is len(codes) before ring encapsulation.
	CodeLength int `cbor:"codeLen"`
	// RingPrime is P, the prime-padded ring length.
	RingPrime int `cbor:"p"`
	// BridgeLength is K, the number of codes repeated at the ring's tail.
	BridgeLength int `cbor:"k"`
	// ChunkSize is C, the distance between framing markers.
	ChunkSize int `cbor:"c"`
	// Marker is M, the framing marker code, guaranteed disjoint from the
	// pre-framed ring's contents.
	Marker uint32 `cbor:"m"`
	// Digest is the integrity fingerprint of the pre-framed ring.
	Digest string `cbor:"digest"`
	// TraceID correlates Event values fired during the Compress call
	// that produced this Metadata with any later Decompress call. It has
	// no effect on codec semantics.
	TraceID uuid.UUID `cbor:"trace"`
}

// MarshalBinary encodes Metadata as CBOR. Persisted format is not
// standardized by the specification; this is a convenience a caller is
// free to ignore in favor of its own schema.
func (m Metadata) MarshalBinary() ([]byte, error) {
	b, err := cbor.Marshal(metadataAlias(m))
	if err != nil {
		return nil, fmt.Errorf("ccc: marshal metadata: %w", err)
	}
	return b, nil
}

// UnmarshalBinary decodes Metadata from CBOR produced by MarshalBinary.
func (m *Metadata) UnmarshalBinary(data []byte) error {
	if err := cbor.Unmarshal(data, (*metadataAlias)(m)); err != nil {
		return fmt.Errorf("ccc: unmarshal metadata: %w", err)
	}
	return nil
}

// metadataAlias has the same fields (and cbor tags) as Metadata but does not
// implement encoding.BinaryMarshaler/BinaryUnmarshaler, so cbor.Marshal and
// cbor.Unmarshal encode it field-by-field instead of recursing back into
// Metadata's own MarshalBinary/UnmarshalBinary.
type metadataAlias Metadata

// newTraceID generates a fresh correlation ID for one Compress call.
func newTraceID() uuid.UUID {
	return uuid.New()
}
