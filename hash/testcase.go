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

package hash

import (
	"fmt"

	"github.com/jacobmaynard/goacvp/acvp"
	"github.com/jacobmaynard/goacvp/internal/bytebuf"
	"github.com/jacobmaynard/goacvp/internal/hexutil"
)

// TestCase is the working state of one test case while the harness drives
// the module under test: the message and digest buffers, the rolling
// messages of the legacy Monte Carlo procedure, and the per-case scalars.
// Each case gets a fresh TestCase and the harness drops it when the case
// completes, on success and failure alike; state never leaks across cases.
type TestCase struct {
	id         int
	alg        Algorithm
	testType   TestType
	mctVersion MCTVersion

	msg bytebuf.Buffer
	md  bytebuf.Buffer
	// Rolling messages of the legacy Monte Carlo procedure.
	m1, m2, m3 bytebuf.Buffer

	xofLen    int // requested digest length in bytes, SHAKE only
	xofBitLen int // requested digest length in bits, SHAKE AFT and VOT

	expandedLen int64           // full message length in bytes, LDT only
	expansion   ExpansionMethod // content expansion rule, LDT only
}

// TestCaseOpts holds the parameters a TestCase is initialized from.
// ID, Algorithm and Type always apply; the remaining fields apply to the
// test types noted on each.
type TestCaseOpts struct {
	ID        int
	Algorithm Algorithm
	Type      TestType
	// MessageHex is the hex-encoded message. For LDT cases it is the
	// content before expansion.
	MessageHex string
	// MCTVersion selects the Monte Carlo message-construction rule.
	// Legacy and SHA-3 MCT only.
	MCTVersion MCTVersion
	// OutLenBits is the requested digest length in bits. SHAKE AFT and
	// VOT only.
	OutLenBits int
	// ExpandedLenBytes is the message length after expansion. LDT only.
	ExpandedLenBytes int64
	// Expansion is the content expansion rule. LDT only.
	Expansion ExpansionMethod
}

// NewTestCase builds the working state for one test case: it sizes the
// message and digest buffers for the algorithm family and test type,
// decodes the message from hex, and for legacy Monte Carlo cases seeds the
// three rolling messages with the initial message.
func NewTestCase(opts TestCaseOpts) (*TestCase, error) {
	tc := &TestCase{
		id:       opts.ID,
		alg:      opts.Algorithm,
		testType: opts.Type,
	}
	if opts.Type == TestTypeMCT {
		tc.mctVersion = opts.MCTVersion
	}

	msgCap := maxMsgBytes
	if opts.Algorithm.Family() == FamilySHAKE {
		msgCap = maxShakeMsgBytes
	}
	tc.msg = bytebuf.New(msgCap)
	decoded, err := hexutil.Decode(opts.MessageHex, msgCap)
	if err != nil {
		return nil, fmt.Errorf("%w: test case %d: msg: %v", acvp.ErrInvalidArgument, opts.ID, err)
	}
	if err := tc.msg.Set(decoded); err != nil {
		return nil, fmt.Errorf("%w: test case %d: msg: %v", acvp.ErrInvalidArgument, opts.ID, err)
	}

	switch {
	case opts.Type != TestTypeMCT:
		if opts.Type == TestTypeVOT {
			tc.md = bytebuf.New(maxXOFDigestBytes)
		} else {
			tc.md = bytebuf.New(maxDigestBytes)
		}
	case opts.Algorithm.Family() == FamilySHA3:
		tc.md = bytebuf.New(maxDigestBytes)
	case opts.Algorithm.Family() == FamilySHAKE:
		tc.md = bytebuf.New(maxXOFDigestBytes)
	default:
		// The legacy procedure feeds digests back through the rolling
		// messages. Under the standard version everything stays at digest
		// length; under the alternate version constructed messages are cut
		// to the seed length, so the buffers must hold full messages.
		bufCap := maxDigestBytes
		if opts.MCTVersion == MCTVersionAlternate {
			bufCap = maxMsgBytes
		}
		tc.md = bytebuf.New(bufCap)
		tc.m1 = bytebuf.New(bufCap)
		tc.m2 = bytebuf.New(bufCap)
		tc.m3 = bytebuf.New(bufCap)
		for _, m := range []*bytebuf.Buffer{&tc.m1, &tc.m2, &tc.m3} {
			if err := m.Set(tc.msg.Bytes()); err != nil {
				return nil, fmt.Errorf("%w: test case %d: msg exceeds the Monte Carlo buffer: %v", acvp.ErrInvalidArgument, opts.ID, err)
			}
		}
	}

	if opts.Algorithm.Family() == FamilySHAKE {
		tc.xofLen = (opts.OutLenBits + 7) / 8
		tc.xofBitLen = opts.OutLenBits
	}
	if opts.Type == TestTypeLDT {
		tc.expandedLen = opts.ExpandedLenBytes
		tc.expansion = opts.Expansion
	}
	return tc, nil
}

// ID returns the test case identifier from the vector set.
func (tc *TestCase) ID() int { return tc.id }

// Algorithm returns the algorithm under test.
func (tc *TestCase) Algorithm() Algorithm { return tc.alg }

// Type returns the test procedure the case belongs to.
func (tc *TestCase) Type() TestType { return tc.testType }

// MCTVersion returns the Monte Carlo message-construction rule. It is
// MCTVersionUnknown outside Monte Carlo cases.
func (tc *TestCase) MCTVersion() MCTVersion { return tc.mctVersion }

// Message returns the current message. For legacy Monte Carlo cases it
// holds the initial seed for the whole case; for SHA-3 and SHAKE Monte
// Carlo cases the harness rewrites it between rounds. The returned slice
// aliases the working state and is valid only until the next write.
func (tc *TestCase) Message() []byte { return tc.msg.Bytes() }

// RollingMessages returns the rolling messages m1, m2 and m3 of the legacy
// Monte Carlo procedure. The returned slices alias the working state.
func (tc *TestCase) RollingMessages() (m1, m2, m3 []byte) {
	return tc.m1.Bytes(), tc.m2.Bytes(), tc.m3.Bytes()
}

// Digest returns the digest most recently recorded with SetDigest. The
// returned slice aliases the working state.
func (tc *TestCase) Digest() []byte { return tc.md.Bytes() }

// SetDigest records the computed digest. It fails if the digest exceeds
// the case's digest capacity.
func (tc *TestCase) SetDigest(digest []byte) error { return tc.md.Set(digest) }

// XOFLen returns the requested digest length in bytes. SHAKE only; the
// harness rewrites it between Monte Carlo rounds.
func (tc *TestCase) XOFLen() int { return tc.xofLen }

// XOFBitLen returns the requested digest length in bits as it appeared in
// the vector set. SHAKE AFT and VOT only.
func (tc *TestCase) XOFBitLen() int { return tc.xofBitLen }

// ExpandedLen returns the full message length in bytes after expansion.
// LDT only.
func (tc *TestCase) ExpandedLen() int64 { return tc.expandedLen }

// Expansion returns the content expansion rule. LDT only.
func (tc *TestCase) Expansion() ExpansionMethod { return tc.expansion }
