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
	"context"

	"github.com/chromoring/ccc/frame"
	"github.com/chromoring/ccc/internal/errs"
	"github.com/chromoring/ccc/ring"
	"github.com/chromoring/ccc/transform"
	"github.com/google/uuid"
)

// Codec runs the four-stage pipeline described by the specification: byte
// packing into the base alphabet, reset-aware LZW coding, prime-padded
// ring encapsulation, and marker framing with a digest.
type Codec struct {
	cfg Config
}

// NewCodec validates cfg and returns a ready Codec. A zero Config is not
// valid on its own; use DefaultConfig as a starting point.
func NewCodec(cfg Config) (*Codec, error) {
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	return &Codec{cfg: cfg}, nil
}

func (c *Codec) fire(evtType int, msg string, size int64, traceID uuid.UUID) {
	if !c.cfg.Verbose || c.cfg.Listener == nil {
		return
	}
	c.cfg.Listener.ProcessEvent(NewEvent(evtType, msg, size, traceID))
}

// Compress runs data through the base codec, LZW codec, ring encapsulation
// and marker framing stages, returning the framed code stream and the
// Metadata required to invert every stage in Decompress.
func (c *Codec) Compress(ctx context.Context, data []byte) ([]uint32, Metadata, error) {
	traceID := newTraceID()
	c.fire(EvtCompressionStart, "compression started", int64(len(data)), traceID)

	if err := ctx.Err(); err != nil {
		return nil, Metadata{}, err
	}

	baseCodec := transform.NewBaseCodec(c.cfg.Strict)
	dna := make([]byte, baseCodec.MaxEncodedLen(len(data)))
	_, dnaLen, err := baseCodec.Forward(data, dna)
	if err != nil {
		return nil, Metadata{}, err
	}
	dna = dna[:dnaLen]
	c.fire(EvtBeforeTransform, "base packing complete", int64(dnaLen), traceID)

	if err := ctx.Err(); err != nil {
		return nil, Metadata{}, err
	}

	lzw := transform.NewLZWCodec(c.cfg.Strict)
	codeBytes := make([]byte, lzw.MaxEncodedLen(len(dna)))
	_, codeByteLen, err := lzw.Forward(dna, codeBytes)
	if err != nil {
		return nil, Metadata{}, err
	}
	codes := bytesToCodes(codeBytes[:codeByteLen])
	c.fire(EvtAfterTransform, "lzw coding complete", int64(len(codes)), traceID)

	if err := ctx.Err(); err != nil {
		return nil, Metadata{}, err
	}

	c.fire(EvtBeforeRing, "ring encapsulation starting", int64(len(codes)), traceID)
	ringCodes, ringInfo := ring.Encapsulate(codes)
	c.fire(EvtAfterRing, "ring encapsulation complete", int64(len(ringCodes)), traceID)

	if err := ctx.Err(); err != nil {
		return nil, Metadata{}, err
	}

	c.fire(EvtBeforeFrame, "framing starting", int64(len(ringCodes)), traceID)
	framed, frameInfo, err := frame.Insert(ringCodes, c.cfg.ChunkSize)
	if err != nil {
		return nil, Metadata{}, err
	}
	c.fire(EvtAfterFrame, "framing complete", int64(len(framed)), traceID)

	meta := Metadata{
		OriginalSize: len(data),
		OriginalBits: 8 * len(data),
		DNALength:    int(dnaLen),
		CodeLength:   len(codes),
		RingPrime:    ringInfo.Prime,
		BridgeLength: ringInfo.BridgeLength,
		ChunkSize:    c.cfg.ChunkSize,
		Marker:       frameInfo.Marker,
		Digest:       frameInfo.Digest,
		TraceID:      traceID,
	}

	c.fire(EvtCompressionEnd, "compression finished", int64(len(framed)), traceID)
	return framed, meta, nil
}

// Decompress inverts Compress: it strips the framing markers, verifies the
// ring's digest, decapsulates the ring, and runs the LZW and base codecs
// in reverse to recover the original bytes.
//
// In strict mode (the Config that produced this Codec had Strict set),
// any InvalidCodeError or IntegrityError encountered along the way is
// returned as-is and no bytes are returned. In lenient mode, the codec
// returns however many bytes it could recover wrapped in a
// *PartialResult, and fires an EvtWarning Event instead of aborting.
func (c *Codec) Decompress(ctx context.Context, codes []uint32, meta Metadata) ([]byte, error) {
	traceID := meta.TraceID
	c.fire(EvtDecompressionStart, "decompression started", int64(len(codes)), traceID)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frameInfo := frame.Info{Marker: meta.Marker, Digest: meta.Digest}
	ringCodes, err := frame.Remove(codes, meta.RingPrime+meta.BridgeLength, frameInfo)
	if err != nil {
		if c.cfg.Strict {
			return nil, err
		}
		c.fire(EvtWarning, err.Error(), 0, traceID)
	}
	c.fire(EvtBeforeRing, "ring decapsulation starting", int64(len(ringCodes)), traceID)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	linear := ring.Decapsulate(ringCodes, ring.Info{OriginalLength: meta.CodeLength, Prime: meta.RingPrime, BridgeLength: meta.BridgeLength})
	c.fire(EvtAfterRing, "ring decapsulation complete", int64(len(linear)), traceID)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.fire(EvtBeforeTransform, "lzw decoding starting", int64(len(linear)), traceID)
	lzw := transform.NewLZWCodec(c.cfg.Strict)
	dna := make([]byte, meta.DNALength)
	_, dnaLen, lzwErr := lzw.Inverse(codesToBytes(linear), dna)
	dna = dna[:dnaLen]

	if lzwErr != nil {
		if c.cfg.Strict {
			return nil, lzwErr
		}
		c.fire(EvtWarning, lzwErr.Error(), int64(dnaLen), traceID)
	}
	c.fire(EvtAfterTransform, "lzw decoding complete", int64(dnaLen), traceID)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	baseCodec := transform.NewBaseCodec(c.cfg.Strict)
	out := make([]byte, meta.OriginalSize)
	_, outLen, baseErr := baseCodec.Inverse(dna, out)
	out = out[:outLen]

	// After an LZW failure only the bytes whose four bases were all decoded
	// are kept, rather than a zero-filled full-length buffer.
	if lzwErr != nil && len(out) > int(dnaLen)/4 {
		out = out[:int(dnaLen)/4]
	}

	c.fire(EvtDecompressionEnd, "decompression finished", int64(outLen), traceID)

	if baseErr != nil {
		if c.cfg.Strict {
			return nil, baseErr
		}
		return out, &errs.PartialResult{Data: out, Cause: baseErr}
	}

	if lzwErr != nil {
		return out, &errs.PartialResult{Data: out, Cause: lzwErr}
	}
	if err != nil {
		return out, &errs.PartialResult{Data: out, Cause: err}
	}

	return out, nil
}

func bytesToCodes(b []byte) []uint32 {
	codes := make([]uint32, len(b)/4)
	for i := range codes {
		codes[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return codes
}

func codesToBytes(codes []uint32) []byte {
	b := make([]byte, len(codes)*4)
	for i, c := range codes {
		b[i*4] = byte(c)
		b[i*4+1] = byte(c >> 8)
		b[i*4+2] = byte(c >> 16)
		b[i*4+3] = byte(c >> 24)
	}
	return b
}
