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

// Package testutil provides fake hash modules and response-document
// shapes for testing the harness. It is *NOT* meant for production use.
package testutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/jacobmaynard/goacvp/hash"
)

// VectorSetResponse mirrors the response document for decoding in tests.
type VectorSetResponse struct {
	VsID       int64            `json:"vsId"`
	Algorithm  string           `json:"algorithm"`
	Revision   string           `json:"revision"`
	TestGroups []*GroupResponse `json:"testGroups"`
}

// GroupResponse is one test group of a response document.
type GroupResponse struct {
	TgID  int             `json:"tgId"`
	Tests []*TestResponse `json:"tests"`
}

// TestResponse is one test case of a response document. Single-shot cases
// carry MD (and OutLen for the XOF algorithms); Monte Carlo cases carry
// ResultsArray.
type TestResponse struct {
	TcID         int             `json:"tcId"`
	MD           string          `json:"md"`
	OutLen       int             `json:"outLen"`
	ResultsArray []*ResultRecord `json:"resultsArray"`
}

// ResultRecord is one Monte Carlo result record.
type ResultRecord struct {
	MD     string `json:"md"`
	OutLen int    `json:"outLen"`
}

// ModuleFunc adapts a function to the hash module interface.
type ModuleFunc func(tc *hash.TestCase) error

// ComputeDigest calls f.
func (f ModuleFunc) ComputeDigest(tc *hash.TestCase) error { return f(tc) }

// FakeModule is a deterministic stand-in for a module under test. It
// honors the full working-state contract, it reads the rolling messages,
// the requested XOF length and the expansion parameters, but derives every
// digest from a single SHA-256 based rule regardless of the algorithm
// under test. DigestLen is the fixed-output digest length in bytes; zero
// means 32.
type FakeModule struct {
	DigestLen int
}

// ComputeDigest derives a digest from the case's effective message and
// records it on the working state.
func (f *FakeModule) ComputeDigest(tc *hash.TestCase) error {
	var msg []byte
	switch {
	case tc.Type() == hash.TestTypeLDT:
		// Cheap stand-in for the expansion: fold the declared length into
		// the content instead of streaming gigabytes.
		msg = append([]byte(fmt.Sprintf("ldt:%d:", tc.ExpandedLen())), tc.Message()...)
	case tc.Type() == hash.TestTypeMCT && tc.Algorithm().Family() == hash.FamilyLegacy:
		m1, m2, m3 := tc.RollingMessages()
		msg = make([]byte, 0, len(m1)+len(m2)+len(m3))
		msg = append(msg, m1...)
		msg = append(msg, m2...)
		msg = append(msg, m3...)
		if tc.MCTVersion() == hash.MCTVersionAlternate {
			seedLen := len(tc.Message())
			if len(msg) >= seedLen {
				msg = msg[:seedLen]
			} else {
				msg = append(msg, make([]byte, seedLen-len(msg))...)
			}
		}
	default:
		msg = tc.Message()
	}

	n := f.DigestLen
	if n == 0 {
		n = 32
	}
	if tc.Algorithm().Family() == hash.FamilySHAKE {
		n = tc.XOFLen()
	}
	return tc.SetDigest(Digest(msg, n))
}

// Digest is FakeModule's digest rule: SHA-256 of the message, extended
// block by block with a counter when n exceeds one hash, truncated to n
// bytes. Exported so tests can compute expected digests independently.
func Digest(msg []byte, n int) []byte {
	out := make([]byte, 0, n)
	for counter := byte(0); len(out) < n; counter++ {
		h := sha256.New()
		h.Write(msg)
		h.Write([]byte{counter})
		out = h.Sum(out)
	}
	return out[:n]
}

// ScriptedModule returns a fixed sequence of digests, one per call,
// failing once the script is exhausted.
type ScriptedModule struct {
	Digests [][]byte
	next    int
}

// ComputeDigest records the next scripted digest on the working state.
func (s *ScriptedModule) ComputeDigest(tc *hash.TestCase) error {
	if s.next >= len(s.Digests) {
		return fmt.Errorf("script exhausted after %d digests", s.next)
	}
	digest := s.Digests[s.next]
	s.next++
	return tc.SetDigest(digest)
}

// CountingModule wraps another module and counts ComputeDigest calls.
type CountingModule struct {
	Module hash.Module
	Calls  int
}

// ComputeDigest increments Calls and delegates to the wrapped module.
func (c *CountingModule) ComputeDigest(tc *hash.TestCase) error {
	c.Calls++
	return c.Module.ComputeDigest(tc)
}

// RecordingModule wraps another module and records the requested XOF
// length of every call.
type RecordingModule struct {
	Module  hash.Module
	XOFLens []int
}

// ComputeDigest appends the case's requested XOF length to XOFLens and
// delegates to the wrapped module.
func (r *RecordingModule) ComputeDigest(tc *hash.TestCase) error {
	r.XOFLens = append(r.XOFLens, tc.XOFLen())
	return r.Module.ComputeDigest(tc)
}

// FailingModule delegates to Module until call number FailOn, from which
// point every call fails.
type FailingModule struct {
	Module hash.Module
	FailOn int
	calls  int
}

// ComputeDigest fails on and after call number FailOn, delegating earlier
// calls to the wrapped module.
func (f *FailingModule) ComputeDigest(tc *hash.TestCase) error {
	f.calls++
	if f.calls >= f.FailOn {
		return fmt.Errorf("forced failure on call %d", f.calls)
	}
	return f.Module.ComputeDigest(tc)
}
