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

// Package ring implements the circular encapsulation stage of the codec:
// padding an LZW code stream up to a prime length and closing it into a
// ring with a short bridge suffix.
package ring

import "math"

// Info records the sizing decisions Encapsulate made, which Decapsulate
// needs to invert them.
type Info struct {
	// OriginalLength is ℓ, the length of the code stream before padding.
	OriginalLength int
	// Prime is P, the smallest prime >= OriginalLength (2 if OriginalLength <= 2).
	Prime int
	// BridgeLength is K, the number of leading codes repeated at the tail.
	BridgeLength int
}

// Encapsulate pads codes with zeros up to the next prime length and
// appends a bridge made of its own first BridgeLength codes, closing it
// into a ring. The returned Info is required to invert this call with
// Decapsulate.
func Encapsulate(codes []uint32) ([]uint32, Info) {
	length := len(codes)
	prime := nextPrime(length)
	bridge := min(isqrt(prime), 10)

	padded := make([]uint32, prime+bridge)
	copy(padded, codes)
	copy(padded[prime:], padded[:bridge])

	return padded, Info{OriginalLength: length, Prime: prime, BridgeLength: bridge}
}

// Decapsulate strips the bridge suffix and any zero padding from ring,
// returning the first info.OriginalLength codes.
func Decapsulate(ringCodes []uint32, info Info) []uint32 {
	end := info.OriginalLength
	if end > len(ringCodes) {
		end = len(ringCodes)
	}
	return ringCodes[:end]
}

// nextPrime returns the smallest prime >= n, treating n <= 2 as 2 per the
// specification.
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}

	for !isPrime(n) {
		n++
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func isqrt(n int) int {
	return int(math.Sqrt(float64(n)))
}
