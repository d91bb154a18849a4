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
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	events []*Event
}

func (l *recordingListener) ProcessEvent(evt *Event) {
	l.events = append(l.events, evt)
}

func roundTrip(t *testing.T, cfg Config, data []byte) []byte {
	t.Helper()

	codec, err := NewCodec(cfg)
	require.NoError(t, err)

	framed, meta, err := codec.Compress(context.Background(), data)
	require.NoError(t, err)

	out, err := codec.Decompress(context.Background(), framed, meta)
	require.NoError(t, err)

	return out
}

func TestCodecRoundTripEmpty(t *testing.T) {
	out := roundTrip(t, DefaultConfig(), nil)
	assert.Empty(t, out)
}

func TestCodecRoundTripSingleByte(t *testing.T) {
	for _, b := range []byte{0x00, 0xFF, 'A', ' '} {
		out := roundTrip(t, DefaultConfig(), []byte{b})
		assert.Equal(t, []byte{b}, out)
	}
}

func TestCodecRoundTripAllZeros(t *testing.T) {
	data := make([]byte, 512)
	out := roundTrip(t, DefaultConfig(), data)
	assert.Equal(t, data, out)
}

func TestCodecRoundTripVariousLengths(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 16, 100, 1024} {
		data := make([]byte, n)
		_, err := rand.Read(data)
		require.NoError(t, err)

		out := roundTrip(t, DefaultConfig(), data)
		assert.Equal(t, data, out, "length %d", n)
	}
}

func TestCodecRoundTripLarge(t *testing.T) {
	data := make([]byte, 256*1024)
	_, err := rand.Read(data)
	require.NoError(t, err)

	out := roundTrip(t, DefaultConfig(), data)
	assert.Equal(t, data, out)
}

func TestCodecCompressIsDeterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly")

	codec, err := NewCodec(DefaultConfig())
	require.NoError(t, err)

	framed1, meta1, err := codec.Compress(context.Background(), data)
	require.NoError(t, err)

	framed2, meta2, err := codec.Compress(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, framed1, framed2)
	assert.Equal(t, meta1.Digest, meta2.Digest)
	assert.Equal(t, meta1.RingPrime, meta2.RingPrime)
	// TraceID is expected to differ between independent Compress calls.
	assert.NotEqual(t, meta1.TraceID, meta2.TraceID)
}

func TestCodecStrictDecompressRejectsCorruptedCode(t *testing.T) {
	codec, err := NewCodec(DefaultConfig())
	require.NoError(t, err)

	data := []byte("some reasonably sized payload for corruption testing purposes")
	framed, meta, err := codec.Compress(context.Background(), data)
	require.NoError(t, err)

	// Flip a non-marker code to break the digest.
	for i := range framed {
		if framed[i] != meta.Marker {
			framed[i] ^= 1
			break
		}
	}

	_, err = codec.Decompress(context.Background(), framed, meta)
	require.Error(t, err)
}

func TestCodecLenientDecompressReturnsPartialResult(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strict = false

	codec, err := NewCodec(cfg)
	require.NoError(t, err)

	data := []byte("some reasonably sized payload for corruption testing purposes")
	framed, meta, err := codec.Compress(context.Background(), data)
	require.NoError(t, err)

	for i := range framed {
		if framed[i] != meta.Marker {
			framed[i] ^= 1
			break
		}
	}

	_, err = codec.Decompress(context.Background(), framed, meta)
	require.Error(t, err)

	_, ok := err.(*PartialResult)
	assert.True(t, ok, "expected a *PartialResult in lenient mode, got %T", err)
}

func TestCodecFiresEventsWhenVerbose(t *testing.T) {
	listener := &recordingListener{}
	cfg := DefaultConfig()
	cfg.Verbose = true
	cfg.Listener = listener

	codec, err := NewCodec(cfg)
	require.NoError(t, err)

	data := []byte("event trace payload")
	framed, meta, err := codec.Compress(context.Background(), data)
	require.NoError(t, err)

	require.NotEmpty(t, listener.events)
	assert.Equal(t, EvtCompressionStart, listener.events[0].Type())

	_, err = codec.Decompress(context.Background(), framed, meta)
	require.NoError(t, err)

	sawDecompressionEnd := false
	for _, evt := range listener.events {
		if evt.Type() == EvtDecompressionEnd {
			sawDecompressionEnd = true
		}
	}
	assert.True(t, sawDecompressionEnd)
}

func TestNewCodecRejectsNegativeChunkSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = -5

	_, err := NewCodec(cfg)
	require.Error(t, err)

	_, ok := err.(*ConfigError)
	assert.True(t, ok)
}

func TestMetadataRoundTripsThroughCBOR(t *testing.T) {
	codec, err := NewCodec(DefaultConfig())
	require.NoError(t, err)

	_, meta, err := codec.Compress(context.Background(), []byte("roundtrip metadata via cbor"))
	require.NoError(t, err)

	blob, err := meta.MarshalBinary()
	require.NoError(t, err)

	var decoded Metadata
	require.NoError(t, decoded.UnmarshalBinary(blob))

	assert.Equal(t, meta, decoded)
}
