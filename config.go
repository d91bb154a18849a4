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

// DefaultChunkSize is the distance between framing markers used by
// DefaultConfig.
const DefaultChunkSize = 1000

// Config parametrizes a Codec.
type Config struct {
	// ChunkSize is the distance between framing markers in the output
	// stream; must be a positive integer. NewCodec returns a ConfigError
	// for zero or a negative value.
	ChunkSize int

	// MinPatternLength is accepted for API compatibility with the
	// reference implementation but has no effect on LZWCodec's state
	// machine (see specification Open Question (c)).
	MinPatternLength int

	// Strict, if true, causes invalid input or an integrity failure to
	// return a typed error. If false, the codec performs best-effort
	// recovery and reports a warning Event instead.
	Strict bool

	// Verbose, if true, causes the codec to fire diagnostic Events to
	// Listener. It has no effect on the compressed output.
	Verbose bool

	// Listener, if non-nil, receives Events fired while Verbose is set.
	Listener Listener
}

// DefaultConfig returns the specification's default configuration:
// chunk_size=1000, min_pattern_length=4, strict=true, verbose=false.
func DefaultConfig() Config {
	return Config{
		ChunkSize:        DefaultChunkSize,
		MinPatternLength: 4,
		Strict:           true,
		Verbose:          false,
	}
}

func (c Config) validate() (Config, error) {
	if c.ChunkSize <= 0 {
		return c, &ConfigError{Field: "ChunkSize", Msg: "must be a positive integer"}
	}

	if c.MinPatternLength == 0 {
		c.MinPatternLength = 4
	}

	return c, nil
}
