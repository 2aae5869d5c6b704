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
	"encoding/json"
	"fmt"

	"github.com/jacobmaynard/goacvp/acvp"
	"github.com/jacobmaynard/goacvp/internal/hexutil"
)

// ProcessVectorSet runs one ACVP secure-hash vector set against the module
// registered for its algorithm and returns the response document. The
// request is validated in full before any test case runs; groups and cases
// are then processed strictly in input order. Any failure aborts the whole
// vector set, wrapped in one of the acvp error classes, and no partial
// response is produced.
func ProcessVectorSet(registry *acvp.Registry, request []byte) ([]byte, error) {
	var req vectorSetRequest
	if err := json.Unmarshal(request, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", acvp.ErrMalformedInput, err)
	}
	if req.Algorithm == nil {
		return nil, fmt.Errorf("%w: missing algorithm", acvp.ErrMalformedInput)
	}
	alg, ok := ParseAlgorithm(*req.Algorithm)
	if !ok {
		return nil, fmt.Errorf("%w: unknown algorithm %q", acvp.ErrUnsupported, *req.Algorithm)
	}
	capability, ok := registry.Lookup(*req.Algorithm)
	if !ok {
		return nil, fmt.Errorf("%w: no capability registered for %q", acvp.ErrUnsupported, *req.Algorithm)
	}
	module, ok := capability.(Module)
	if !ok {
		return nil, fmt.Errorf("%w: capability registered for %q is a %T, not a hash module", acvp.ErrUnsupported, *req.Algorithm, capability)
	}

	vs, err := buildVectorSet(alg, &req)
	if err != nil {
		return nil, err
	}
	rsp, err := runVectorSet(module, vs)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(rsp)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding response: %v", acvp.ErrInternal, err)
	}
	return out, nil
}

func runVectorSet(module Module, vs *vectorSet) (*vectorSetResponse, error) {
	rsp := &vectorSetResponse{
		VsID:       vs.vsID,
		Algorithm:  vs.algorithm.String(),
		Revision:   vs.revision,
		TestGroups: make([]*testGroupResponse, 0, len(vs.groups)),
	}
	for i := range vs.groups {
		group := &vs.groups[i]
		groupRsp := &testGroupResponse{
			TgID:  group.id,
			Tests: make([]*testCaseResponse, 0, len(group.cases)),
		}
		for j := range group.cases {
			caseRsp, err := runCase(module, vs.algorithm, group, &group.cases[j])
			if err != nil {
				return nil, err
			}
			groupRsp.Tests = append(groupRsp.Tests, caseRsp)
		}
		rsp.TestGroups = append(rsp.TestGroups, groupRsp)
	}
	return rsp, nil
}

// runCase builds fresh working state for one test case, dispatches on the
// test type and algorithm family, and assembles the case response. The
// state is dropped when the case completes, on success and failure alike.
func runCase(module Module, alg Algorithm, group *vectorGroup, vc *vectorCase) (*testCaseResponse, error) {
	tc, err := NewTestCase(TestCaseOpts{
		ID:               vc.id,
		Algorithm:        alg,
		Type:             group.testType,
		MessageHex:       vc.msgHex,
		MCTVersion:       group.mctVersion,
		OutLenBits:       vc.outLenBits,
		ExpandedLenBytes: vc.expandedLen,
		Expansion:        vc.expansion,
	})
	if err != nil {
		return nil, err
	}

	rsp := &testCaseResponse{TcID: tc.id}
	switch group.testType {
	case TestTypeMCT:
		var records []*resultRecord
		switch alg.Family() {
		case FamilyLegacy:
			records, err = legacyMCT(module, tc)
		case FamilySHA3:
			records, err = sha3MCT(module, tc)
		case FamilySHAKE:
			records, err = shakeMCT(module, tc, group.minOutLen, group.maxOutLen)
		default:
			err = fmt.Errorf("%w: no Monte Carlo procedure for family %v", acvp.ErrInternal, alg.Family())
		}
		if err != nil {
			return nil, err
		}
		rsp.ResultsArray = records
	case TestTypeAFT, TestTypeVOT, TestTypeLDT:
		if err := runSingleShot(module, tc, rsp); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: no runner for test type %v", acvp.ErrInternal, group.testType)
	}
	return rsp, nil
}

// runSingleShot drives AFT, VOT and LDT cases: one module call, one digest.
func runSingleShot(module Module, tc *TestCase, rsp *testCaseResponse) error {
	if err := module.ComputeDigest(tc); err != nil {
		return fmt.Errorf("%w: test case %d: %v", acvp.ErrCryptoModuleFailed, tc.id, err)
	}
	maxChars := maxDigestChars
	if tc.testType == TestTypeVOT {
		maxChars = maxXOFDigestChars
	}
	md, err := hexutil.Encode(tc.md.Bytes(), maxChars)
	if err != nil {
		return fmt.Errorf("%w: test case %d: encoding digest: %v", acvp.ErrInternal, tc.id, err)
	}
	rsp.MD = md
	if tc.alg.Family() == FamilySHAKE {
		rsp.OutLen = tc.md.Len() * 8
	}
	return nil
}

// newResultRecord renders the digest standing in the working state as one
// Monte Carlo result record. XOF records carry the digest length in bits.
func newResultRecord(tc *TestCase) (*resultRecord, error) {
	maxChars := maxDigestChars
	if tc.alg.Family() == FamilySHAKE {
		maxChars = maxXOFDigestChars
	}
	md, err := hexutil.Encode(tc.md.Bytes(), maxChars)
	if err != nil {
		return nil, fmt.Errorf("%w: test case %d: encoding digest: %v", acvp.ErrInternal, tc.id, err)
	}
	record := &resultRecord{MD: md}
	if tc.alg.Family() == FamilySHAKE {
		record.OutLen = tc.md.Len() * 8
	}
	return record, nil
}
