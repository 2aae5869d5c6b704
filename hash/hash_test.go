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

package hash_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jacobmaynard/goacvp/hash"
)

func TestAlgorithmNames(t *testing.T) {
	for _, tc := range []struct {
		alg  hash.Algorithm
		want string
	}{
		{alg: hash.SHA1, want: "SHA-1"},
		{alg: hash.SHA2_224, want: "SHA2-224"},
		{alg: hash.SHA2_256, want: "SHA2-256"},
		{alg: hash.SHA2_384, want: "SHA2-384"},
		{alg: hash.SHA2_512, want: "SHA2-512"},
		{alg: hash.SHA2_512_224, want: "SHA2-512/224"},
		{alg: hash.SHA2_512_256, want: "SHA2-512/256"},
		{alg: hash.SHA3_224, want: "SHA3-224"},
		{alg: hash.SHA3_256, want: "SHA3-256"},
		{alg: hash.SHA3_384, want: "SHA3-384"},
		{alg: hash.SHA3_512, want: "SHA3-512"},
		{alg: hash.SHAKE128, want: "SHAKE-128"},
		{alg: hash.SHAKE256, want: "SHAKE-256"},
		{alg: hash.AlgorithmUnknown, want: "UNKNOWN"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.alg.String(); got != tc.want {
				t.Errorf("%d.String() = %q, want %q", tc.alg, got, tc.want)
			}
		})
	}
}

func TestParseAlgorithmRoundTrips(t *testing.T) {
	for _, alg := range hash.Algorithms() {
		got, ok := hash.ParseAlgorithm(alg.String())
		if !ok {
			t.Errorf("ParseAlgorithm(%q) ok = false, want true", alg.String())
			continue
		}
		if got != alg {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", alg.String(), got, alg)
		}
	}
}

func TestParseAlgorithmRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"", "SHA-256", "sha2-256", "SHA2-512/128", "HMAC-SHA2-256"} {
		if _, ok := hash.ParseAlgorithm(name); ok {
			t.Errorf("ParseAlgorithm(%q) ok = true, want false", name)
		}
	}
}

func TestAlgorithmFamilies(t *testing.T) {
	want := map[hash.Family][]hash.Algorithm{
		hash.FamilyLegacy: {
			hash.SHA1, hash.SHA2_224, hash.SHA2_256, hash.SHA2_384,
			hash.SHA2_512, hash.SHA2_512_224, hash.SHA2_512_256,
		},
		hash.FamilySHA3:  {hash.SHA3_224, hash.SHA3_256, hash.SHA3_384, hash.SHA3_512},
		hash.FamilySHAKE: {hash.SHAKE128, hash.SHAKE256},
	}
	got := map[hash.Family][]hash.Algorithm{}
	for _, alg := range hash.Algorithms() {
		got[alg.Family()] = append(got[alg.Family()], alg)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("family partition diff (-want +got):\n%s", diff)
	}
	if got := hash.AlgorithmUnknown.Family(); got != hash.FamilyUnknown {
		t.Errorf("AlgorithmUnknown.Family() = %v, want %v", got, hash.FamilyUnknown)
	}
}

func TestMCTVersionStrings(t *testing.T) {
	if got, want := hash.MCTVersionStandard.String(), "standard"; got != want {
		t.Errorf("MCTVersionStandard.String() = %q, want %q", got, want)
	}
	if got, want := hash.MCTVersionAlternate.String(), "alternate"; got != want {
		t.Errorf("MCTVersionAlternate.String() = %q, want %q", got, want)
	}
}

func TestTestTypeStrings(t *testing.T) {
	for _, tc := range []struct {
		testType hash.TestType
		want     string
	}{
		{testType: hash.TestTypeAFT, want: "AFT"},
		{testType: hash.TestTypeMCT, want: "MCT"},
		{testType: hash.TestTypeVOT, want: "VOT"},
		{testType: hash.TestTypeLDT, want: "LDT"},
		{testType: hash.TestTypeUnknown, want: "UNKNOWN"},
	} {
		if got := tc.testType.String(); got != tc.want {
			t.Errorf("TestType(%d).String() = %q, want %q", tc.testType, got, tc.want)
		}
	}
}

func TestExpansionMethodStrings(t *testing.T) {
	if got, want := hash.ExpansionRepeating.String(), "repeating"; got != want {
		t.Errorf("ExpansionRepeating.String() = %q, want %q", got, want)
	}
	if got, want := hash.ExpansionUnknown.String(), "unknown"; got != want {
		t.Errorf("ExpansionUnknown.String() = %q, want %q", got, want)
	}
}
