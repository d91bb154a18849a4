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

// Package ccc implements the Circular Chromosome Codec: a lossless
// byte-stream codec whose compressed form is modeled after a circular DNA
// chromosome.
//
// The pipeline is a chain of reversible stages: a bit-to-base transform
// (ccc/transform.BaseCodec), an LZW coder with a dictionary-reset protocol
// (ccc/transform.LZWCodec), a circular ring builder with prime-sized padding
// (ccc/ring), and a trans-splicing frame inserter with a digest-based
// integrity check (ccc/frame). Codec drives the five stages end to end and
// aggregates the Metadata a decoder needs to invert them.
//
// Diagnostics live in ccc/stats and never participate in Compress or
// Decompress; they exist purely to report on an already-produced result.
package ccc
