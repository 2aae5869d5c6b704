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

// Package hash drives a hash implementation under test through the ACVP
// secure-hash validation procedures and assembles the response vector set.
//
// The entry point is ProcessVectorSet, which takes one JSON vector-set
// request, validates it in full, runs every test case in order against the
// module registered for the set's algorithm, and returns the JSON response.
// Four test procedures are supported: the one-shot algorithm functional
// test (AFT), the iterated Monte Carlo test (MCT), the variable output test
// (VOT) for the extendable-output functions, and the large data test (LDT).
// Processing is synchronous and single-threaded; any validation, module or
// internal failure aborts the whole vector set without a partial response.
package hash

// Monte Carlo iteration counts, fixed by the ACVP secure-hash protocol.
const (
	mctOuterIterations = 100
	mctInnerIterations = 1000
)

// SHAKE Monte Carlo messages are pinned to the leftmost 128 bits of the
// previous digest.
const shakeMCTMessageLen = 16

// Working-buffer capacities in bytes. SHAKE accepts longer messages than
// the other families; fixed digests are at most 512 bits while XOF digests
// may run to the full output-length bound.
const (
	maxMsgBytes       = 8192
	maxShakeMsgBytes  = 16384
	maxDigestBytes    = 64
	maxXOFDigestBytes = 8192
)

// XOF output-length domain in bits.
const (
	minXOFOutputBits = 16
	maxXOFOutputBits = 65536
)

// Hex-string capacities corresponding to the byte bounds above.
const (
	maxMsgChars       = 2 * maxMsgBytes
	maxShakeMsgChars  = 2 * maxShakeMsgBytes
	maxDigestChars    = 2 * maxDigestBytes
	maxXOFDigestChars = 2 * maxXOFDigestBytes
)

// Family groups the supported algorithms by the shape of their Monte Carlo
// procedure and the sizing of their working buffers.
type Family int

const (
	// FamilyUnknown is the zero value of Family.
	FamilyUnknown Family = iota
	// FamilyLegacy covers SHA-1 and the SHA-2 variants.
	FamilyLegacy
	// FamilySHA3 covers the fixed-output SHA-3 variants.
	FamilySHA3
	// FamilySHAKE covers the extendable-output SHAKE variants.
	FamilySHAKE
)

func (f Family) String() string {
	switch f {
	case FamilyLegacy:
		return "LEGACY"
	case FamilySHA3:
		return "SHA-3"
	case FamilySHAKE:
		return "SHAKE"
	default:
		return "UNKNOWN"
	}
}

// Algorithm identifies a hash algorithm the harness can drive. The values
// map one-to-one onto ACVP algorithm registry names.
type Algorithm int

const (
	// AlgorithmUnknown is the zero value of Algorithm.
	AlgorithmUnknown Algorithm = iota
	// SHA1 is ACVP "SHA-1".
	SHA1
	// SHA2_224 is ACVP "SHA2-224".
	SHA2_224
	// SHA2_256 is ACVP "SHA2-256".
	SHA2_256
	// SHA2_384 is ACVP "SHA2-384".
	SHA2_384
	// SHA2_512 is ACVP "SHA2-512".
	SHA2_512
	// SHA2_512_224 is ACVP "SHA2-512/224".
	SHA2_512_224
	// SHA2_512_256 is ACVP "SHA2-512/256".
	SHA2_512_256
	// SHA3_224 is ACVP "SHA3-224".
	SHA3_224
	// SHA3_256 is ACVP "SHA3-256".
	SHA3_256
	// SHA3_384 is ACVP "SHA3-384".
	SHA3_384
	// SHA3_512 is ACVP "SHA3-512".
	SHA3_512
	// SHAKE128 is ACVP "SHAKE-128".
	SHAKE128
	// SHAKE256 is ACVP "SHAKE-256".
	SHAKE256
)

// String returns the algorithm's ACVP registry name.
func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "SHA-1"
	case SHA2_224:
		return "SHA2-224"
	case SHA2_256:
		return "SHA2-256"
	case SHA2_384:
		return "SHA2-384"
	case SHA2_512:
		return "SHA2-512"
	case SHA2_512_224:
		return "SHA2-512/224"
	case SHA2_512_256:
		return "SHA2-512/256"
	case SHA3_224:
		return "SHA3-224"
	case SHA3_256:
		return "SHA3-256"
	case SHA3_384:
		return "SHA3-384"
	case SHA3_512:
		return "SHA3-512"
	case SHAKE128:
		return "SHAKE-128"
	case SHAKE256:
		return "SHAKE-256"
	default:
		return "UNKNOWN"
	}
}

// Family returns the family the algorithm belongs to.
func (a Algorithm) Family() Family {
	switch a {
	case SHA1, SHA2_224, SHA2_256, SHA2_384, SHA2_512, SHA2_512_224, SHA2_512_256:
		return FamilyLegacy
	case SHA3_224, SHA3_256, SHA3_384, SHA3_512:
		return FamilySHA3
	case SHAKE128, SHAKE256:
		return FamilySHAKE
	default:
		return FamilyUnknown
	}
}

// Algorithms returns every algorithm the harness supports.
func Algorithms() []Algorithm {
	return []Algorithm{
		SHA1,
		SHA2_224,
		SHA2_256,
		SHA2_384,
		SHA2_512,
		SHA2_512_224,
		SHA2_512_256,
		SHA3_224,
		SHA3_256,
		SHA3_384,
		SHA3_512,
		SHAKE128,
		SHAKE256,
	}
}

// ParseAlgorithm resolves an ACVP algorithm registry name. It reports
// false for names the harness does not support.
func ParseAlgorithm(name string) (Algorithm, bool) {
	for _, a := range Algorithms() {
		if a.String() == name {
			return a, true
		}
	}
	return AlgorithmUnknown, false
}

// TestType is the ACVP test procedure a test group exercises.
type TestType int

const (
	// TestTypeUnknown is the zero value of TestType.
	TestTypeUnknown TestType = iota
	// TestTypeAFT is the algorithm functional test: one message, one digest.
	TestTypeAFT
	// TestTypeMCT is the Monte Carlo test: an iterated feedback procedure
	// emitting one digest per outer iteration.
	TestTypeMCT
	// TestTypeVOT is the variable output test: a one-shot XOF digest at a
	// requested length. SHAKE only.
	TestTypeVOT
	// TestTypeLDT is the large data test: a one-shot digest of a short
	// content expanded to a declared full length. SHA-1 and SHA-2 only.
	TestTypeLDT
)

func (t TestType) String() string {
	switch t {
	case TestTypeAFT:
		return "AFT"
	case TestTypeMCT:
		return "MCT"
	case TestTypeVOT:
		return "VOT"
	case TestTypeLDT:
		return "LDT"
	default:
		return "UNKNOWN"
	}
}

func parseTestType(s string) (TestType, bool) {
	switch s {
	case "AFT":
		return TestTypeAFT, true
	case "MCT":
		return TestTypeMCT, true
	case "VOT":
		return TestTypeVOT, true
	case "LDT":
		return TestTypeLDT, true
	default:
		return TestTypeUnknown, false
	}
}

// MCTVersion selects the message-construction rule of the legacy and SHA-3
// Monte Carlo procedures.
type MCTVersion int

const (
	// MCTVersionUnknown is the zero value of MCTVersion.
	MCTVersionUnknown MCTVersion = iota
	// MCTVersionStandard passes constructed messages through at full
	// length.
	MCTVersionStandard
	// MCTVersionAlternate truncates or zero-pads every constructed message
	// to the length of the initial seed.
	MCTVersionAlternate
)

func (v MCTVersion) String() string {
	switch v {
	case MCTVersionStandard:
		return "standard"
	case MCTVersionAlternate:
		return "alternate"
	default:
		return "unknown"
	}
}

func parseMCTVersion(s string) (MCTVersion, bool) {
	switch s {
	case "standard":
		return MCTVersionStandard, true
	case "alternate":
		return MCTVersionAlternate, true
	default:
		return MCTVersionUnknown, false
	}
}

// ExpansionMethod is the rule a large data test expands its content with.
type ExpansionMethod int

const (
	// ExpansionUnknown is the zero value of ExpansionMethod.
	ExpansionUnknown ExpansionMethod = iota
	// ExpansionRepeating repeats the content until the declared full
	// length is reached; the last repetition may be cut short.
	ExpansionRepeating
)

func (m ExpansionMethod) String() string {
	switch m {
	case ExpansionRepeating:
		return "repeating"
	default:
		return "unknown"
	}
}

func parseExpansionMethod(s string) (ExpansionMethod, bool) {
	if s == "repeating" {
		return ExpansionRepeating, true
	}
	return ExpansionUnknown, false
}
