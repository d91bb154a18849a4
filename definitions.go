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

import "github.com/chromoring/ccc/internal/errs"

// Error codes carried by the typed errors in errors.go, mirroring the
// code-carrying error convention used throughout the codec's ancestry.
const (
	ErrMissingParam = errs.ErrMissingParam
	ErrConfig       = errs.ErrConfig
	ErrFormat       = errs.ErrFormat
	ErrInvalidCode  = errs.ErrInvalidCode
	ErrIntegrity    = errs.ErrIntegrity
	ErrUnknownStage = errs.ErrUnknownStage
	ErrUnknown      = errs.ErrUnknown
)

// MaxDict is the maximum number of entries the LZW dictionary may hold
// before a reset is forced.
const MaxDict = 65536

// ResetCode is the distinguished code emitted to force both sides of the
// LZW coder to reset their dictionaries. It is deliberately outside the
// 16-bit range so that no learned code (which is always < MaxDict) can
// ever alias it.
const ResetCode = 65536

// ByteTransform transforms an input byte slice and writes the result to an
// output byte slice. The result may have a different length than the
// input. Implementations must be stateless across calls except where the
// type's documentation says otherwise (LZWCodec's dictionary is per-call
// state, not per-instance state).
type ByteTransform interface {
	// Forward applies the transform to src and writes the result to dst.
	// Returns the number of input bytes consumed, the number of output
	// bytes written, and an error if any.
	Forward(src, dst []byte) (uint, uint, error)

	// Inverse applies the reverse transform to src and writes the result
	// to dst. Returns the number of input bytes consumed, the number of
	// output bytes written, and an error if any.
	Inverse(src, dst []byte) (uint, uint, error)

	// MaxEncodedLen returns the maximum size required for the Forward
	// output buffer given a source of length srcLen.
	MaxEncodedLen(srcLen int) int
}
