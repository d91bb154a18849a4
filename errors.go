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

// The typed errors below are defined in internal/errs so that the
// transform, ring and frame packages can construct them directly without
// importing this package (which imports them). They are aliased here so
// callers of this package see a single, flat error taxonomy.
type (
	FormatError      = errs.FormatError
	InvalidCodeError = errs.InvalidCodeError
	IntegrityError   = errs.IntegrityError
	ConfigError      = errs.ConfigError
	PartialResult    = errs.PartialResult
)
