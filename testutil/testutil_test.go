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

package testutil_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/jacobmaynard/goacvp/hash"
	"github.com/jacobmaynard/goacvp/testutil"
)

func mustTestCase(t *testing.T, opts hash.TestCaseOpts) *hash.TestCase {
	t.Helper()
	tc, err := hash.NewTestCase(opts)
	if err != nil {
		t.Fatalf("NewTestCase() err = %v, want nil", err)
	}
	return tc
}

func TestDigestLengthAndPrefix(t *testing.T) {
	msg := []byte("digest rule")
	for _, n := range []int{1, 31, 32, 33, 100} {
		if got := len(testutil.Digest(msg, n)); got != n {
			t.Errorf("len(Digest(msg, %d)) = %d, want %d", n, got, n)
		}
	}
	long := testutil.Digest(msg, 100)
	short := testutil.Digest(msg, 32)
	if !bytes.Equal(long[:32], short) {
		t.Errorf("Digest(msg, 100)[:32] = %x, want the shorter digest %x", long[:32], short)
	}
	if bytes.Equal(testutil.Digest([]byte("a"), 32), testutil.Digest([]byte("b"), 32)) {
		t.Errorf("Digest() of distinct messages collided")
	}
}

func TestFakeModuleSingleShot(t *testing.T) {
	msg := []byte("one shot")
	state := mustTestCase(t, hash.TestCaseOpts{
		ID:         1,
		Algorithm:  hash.SHA2_256,
		Type:       hash.TestTypeAFT,
		MessageHex: hex.EncodeToString(msg),
	})
	if err := (&testutil.FakeModule{}).ComputeDigest(state); err != nil {
		t.Fatalf("ComputeDigest() err = %v, want nil", err)
	}
	if want := testutil.Digest(msg, 32); !bytes.Equal(state.Digest(), want) {
		t.Errorf("digest = %x, want %x", state.Digest(), want)
	}

	short := mustTestCase(t, hash.TestCaseOpts{
		ID:         2,
		Algorithm:  hash.SHA1,
		Type:       hash.TestTypeAFT,
		MessageHex: hex.EncodeToString(msg),
	})
	if err := (&testutil.FakeModule{DigestLen: 20}).ComputeDigest(short); err != nil {
		t.Fatalf("ComputeDigest() err = %v, want nil", err)
	}
	if got := len(short.Digest()); got != 20 {
		t.Errorf("len(digest) = %d, want 20", got)
	}
}

func TestFakeModuleHonorsXOFLength(t *testing.T) {
	msg := []byte("xof")
	state := mustTestCase(t, hash.TestCaseOpts{
		ID:         1,
		Algorithm:  hash.SHAKE128,
		Type:       hash.TestTypeVOT,
		MessageHex: hex.EncodeToString(msg),
		OutLenBits: 264,
	})
	if err := (&testutil.FakeModule{}).ComputeDigest(state); err != nil {
		t.Fatalf("ComputeDigest() err = %v, want nil", err)
	}
	if want := testutil.Digest(msg, 33); !bytes.Equal(state.Digest(), want) {
		t.Errorf("digest = %x, want %x", state.Digest(), want)
	}
}

func TestFakeModuleMonteCarloConstruction(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)
	standard := mustTestCase(t, hash.TestCaseOpts{
		ID:         1,
		Algorithm:  hash.SHA2_256,
		Type:       hash.TestTypeMCT,
		MessageHex: hex.EncodeToString(seed),
		MCTVersion: hash.MCTVersionStandard,
	})
	if err := (&testutil.FakeModule{}).ComputeDigest(standard); err != nil {
		t.Fatalf("ComputeDigest() err = %v, want nil", err)
	}
	if want := testutil.Digest(bytes.Repeat(seed, 3), 32); !bytes.Equal(standard.Digest(), want) {
		t.Errorf("standard digest = %x, want %x", standard.Digest(), want)
	}

	alternate := mustTestCase(t, hash.TestCaseOpts{
		ID:         2,
		Algorithm:  hash.SHA2_256,
		Type:       hash.TestTypeMCT,
		MessageHex: hex.EncodeToString(seed),
		MCTVersion: hash.MCTVersionAlternate,
	})
	if err := (&testutil.FakeModule{}).ComputeDigest(alternate); err != nil {
		t.Fatalf("ComputeDigest() err = %v, want nil", err)
	}
	if want := testutil.Digest(bytes.Repeat(seed, 3)[:len(seed)], 32); !bytes.Equal(alternate.Digest(), want) {
		t.Errorf("alternate digest = %x, want %x", alternate.Digest(), want)
	}
}

func TestFakeModuleFoldsExpandedLength(t *testing.T) {
	newState := func(id int, expandedLen int64) *hash.TestCase {
		return mustTestCase(t, hash.TestCaseOpts{
			ID:               id,
			Algorithm:        hash.SHA2_256,
			Type:             hash.TestTypeLDT,
			MessageHex:       "616263",
			ExpandedLenBytes: expandedLen,
			Expansion:        hash.ExpansionRepeating,
		})
	}
	module := &testutil.FakeModule{}
	a, b := newState(1, 9), newState(2, 12)
	if err := module.ComputeDigest(a); err != nil {
		t.Fatalf("ComputeDigest() err = %v, want nil", err)
	}
	if err := module.ComputeDigest(b); err != nil {
		t.Fatalf("ComputeDigest() err = %v, want nil", err)
	}
	if bytes.Equal(a.Digest(), b.Digest()) {
		t.Errorf("digests for different full lengths collided")
	}
}

func TestScriptedModulePlaysDigestsInOrder(t *testing.T) {
	scripted := &testutil.ScriptedModule{Digests: [][]byte{{0x01}, {0x02, 0x03}}}
	for i, want := range [][]byte{{0x01}, {0x02, 0x03}} {
		state := mustTestCase(t, hash.TestCaseOpts{
			ID:         i + 1,
			Algorithm:  hash.SHA2_256,
			Type:       hash.TestTypeAFT,
			MessageHex: "00",
		})
		if err := scripted.ComputeDigest(state); err != nil {
			t.Fatalf("ComputeDigest() call %d err = %v, want nil", i+1, err)
		}
		if !bytes.Equal(state.Digest(), want) {
			t.Errorf("call %d digest = %x, want %x", i+1, state.Digest(), want)
		}
	}
	exhausted := mustTestCase(t, hash.TestCaseOpts{
		ID:         3,
		Algorithm:  hash.SHA2_256,
		Type:       hash.TestTypeAFT,
		MessageHex: "00",
	})
	if err := scripted.ComputeDigest(exhausted); err == nil {
		t.Errorf("ComputeDigest() past the script err = nil, want an error")
	}
}

func TestCountingAndRecordingWrappers(t *testing.T) {
	counting := &testutil.CountingModule{Module: &testutil.FakeModule{}}
	recording := &testutil.RecordingModule{Module: counting}
	for i, outLenBits := range []int{16, 264, 1096} {
		state := mustTestCase(t, hash.TestCaseOpts{
			ID:         i + 1,
			Algorithm:  hash.SHAKE256,
			Type:       hash.TestTypeVOT,
			MessageHex: "00",
			OutLenBits: outLenBits,
		})
		if err := recording.ComputeDigest(state); err != nil {
			t.Fatalf("ComputeDigest() err = %v, want nil", err)
		}
	}
	if counting.Calls != 3 {
		t.Errorf("Calls = %d, want 3", counting.Calls)
	}
	want := []int{2, 33, 137}
	if len(recording.XOFLens) != len(want) {
		t.Fatalf("len(XOFLens) = %d, want %d", len(recording.XOFLens), len(want))
	}
	for i, n := range want {
		if recording.XOFLens[i] != n {
			t.Errorf("XOFLens[%d] = %d, want %d", i, recording.XOFLens[i], n)
		}
	}
}

func TestFailingModuleFailsFromThreshold(t *testing.T) {
	failing := &testutil.FailingModule{Module: &testutil.FakeModule{}, FailOn: 3}
	for call := 1; call <= 4; call++ {
		state := mustTestCase(t, hash.TestCaseOpts{
			ID:         call,
			Algorithm:  hash.SHA2_256,
			Type:       hash.TestTypeAFT,
			MessageHex: "00",
		})
		err := failing.ComputeDigest(state)
		if call < 3 && err != nil {
			t.Errorf("ComputeDigest() call %d err = %v, want nil", call, err)
		}
		if call >= 3 && err == nil {
			t.Errorf("ComputeDigest() call %d err = nil, want an error", call)
		}
	}
}
