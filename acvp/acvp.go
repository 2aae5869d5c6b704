// Copyright 2026 Jacob Maynard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package acvp provides the pieces shared by ACVP test-vector handlers:
// the error classes handlers report failures with, and the registry that
// maps algorithm names to module-under-test capabilities.
package acvp

import "errors"

// Handlers classify every failure by wrapping exactly one of the errors
// below; callers branch on the class with errors.Is.
var (
	// ErrMalformedInput reports a vector set missing a required field.
	ErrMalformedInput = errors.New("acvp: malformed input")
	// ErrInvalidArgument reports a field whose value is outside its domain.
	ErrInvalidArgument = errors.New("acvp: invalid argument")
	// ErrUnsupported reports an algorithm or operation with no registered
	// capability.
	ErrUnsupported = errors.New("acvp: unsupported operation")
	// ErrCryptoModuleFailed reports a failure inside the module under test.
	ErrCryptoModuleFailed = errors.New("acvp: crypto module failed")
	// ErrInternal reports a violated harness invariant.
	ErrInternal = errors.New("acvp: internal error")
)
