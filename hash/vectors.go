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
)

// Wire shape of a vector-set request. Optional fields are pointers so an
// absent field stays distinct from a present-but-zero one.
type vectorSetRequest struct {
	VsID       *int64             `json:"vsId"`
	Algorithm  *string            `json:"algorithm"`
	Revision   *string            `json:"revision"`
	TestGroups []testGroupRequest `json:"testGroups"`
}

type testGroupRequest struct {
	TgID       *int              `json:"tgId"`
	TestType   *string           `json:"testType"`
	MCTVersion *string           `json:"mctVersion"`
	MinOutLen  *int              `json:"minOutLen"`
	MaxOutLen  *int              `json:"maxOutLen"`
	Tests      []testCaseRequest `json:"tests"`
}

type testCaseRequest struct {
	TcID     int              `json:"tcId"`
	Msg      *string          `json:"msg"`
	OutLen   *int             `json:"outLen"`
	LargeMsg *largeMsgRequest `json:"largeMsg"`
}

type largeMsgRequest struct {
	Content            *string `json:"content"`
	ContentLength      *int64  `json:"contentLength"`
	FullLength         *int64  `json:"fullLength"`
	ExpansionTechnique *string `json:"expansionTechnique"`
}

// Wire shape of a vector-set response. vsId and revision mirror the
// request and are omitted when the request omitted them.
type vectorSetResponse struct {
	VsID       *int64               `json:"vsId,omitempty"`
	Algorithm  string               `json:"algorithm"`
	Revision   *string              `json:"revision,omitempty"`
	TestGroups []*testGroupResponse `json:"testGroups"`
}

type testGroupResponse struct {
	TgID  int                 `json:"tgId"`
	Tests []*testCaseResponse `json:"tests"`
}

type testCaseResponse struct {
	TcID         int             `json:"tcId"`
	MD           string          `json:"md,omitempty"`
	OutLen       int             `json:"outLen,omitempty"`
	ResultsArray []*resultRecord `json:"resultsArray,omitempty"`
}

type resultRecord struct {
	MD     string `json:"md"`
	OutLen int    `json:"outLen,omitempty"`
}

// vectorSet is the validated, immutable model of one vector-set request.
// Messages stay hex encoded; they are decoded when the per-case working
// state is built.
type vectorSet struct {
	vsID      *int64
	algorithm Algorithm
	revision  *string
	groups    []vectorGroup
}

type vectorGroup struct {
	id         int
	testType   TestType
	mctVersion MCTVersion // legacy and SHA-3 MCT
	minOutLen  int        // bits, SHAKE MCT
	maxOutLen  int        // bits, SHAKE MCT
	cases      []vectorCase
}

type vectorCase struct {
	id          int
	msgHex      string
	outLenBits  int   // SHAKE AFT and VOT
	expandedLen int64 // bytes, LDT
	expansion   ExpansionMethod
}

// buildVectorSet validates every group and case of the parsed request and
// assembles the model the runners consume. The first violation aborts the
// whole vector set; nothing runs until the request is valid in full.
func buildVectorSet(alg Algorithm, req *vectorSetRequest) (*vectorSet, error) {
	vs := &vectorSet{
		vsID:      req.VsID,
		algorithm: alg,
		revision:  req.Revision,
		groups:    make([]vectorGroup, 0, len(req.TestGroups)),
	}
	for i := range req.TestGroups {
		group, err := buildGroup(alg, &req.TestGroups[i])
		if err != nil {
			return nil, err
		}
		vs.groups = append(vs.groups, group)
	}
	return vs, nil
}

func buildGroup(alg Algorithm, req *testGroupRequest) (vectorGroup, error) {
	var g vectorGroup
	if req.TgID == nil || *req.TgID == 0 {
		return g, fmt.Errorf("%w: missing tgId", acvp.ErrMalformedInput)
	}
	g.id = *req.TgID

	if req.TestType == nil {
		return g, fmt.Errorf("%w: test group %d: missing testType", acvp.ErrMalformedInput, g.id)
	}
	testType, ok := parseTestType(*req.TestType)
	if !ok {
		return g, fmt.Errorf("%w: test group %d: unknown testType %q", acvp.ErrInvalidArgument, g.id, *req.TestType)
	}
	g.testType = testType

	family := alg.Family()
	if testType == TestTypeVOT && family != FamilySHAKE {
		return g, fmt.Errorf("%w: test group %d: testType VOT does not apply to %v", acvp.ErrInvalidArgument, g.id, alg)
	}
	if testType == TestTypeLDT && family != FamilyLegacy {
		return g, fmt.Errorf("%w: test group %d: testType LDT does not apply to %v", acvp.ErrInvalidArgument, g.id, alg)
	}

	if testType == TestTypeMCT {
		if family == FamilySHAKE {
			if req.MinOutLen == nil || req.MaxOutLen == nil {
				return g, fmt.Errorf("%w: test group %d: missing minOutLen or maxOutLen", acvp.ErrMalformedInput, g.id)
			}
			minOut, maxOut := *req.MinOutLen, *req.MaxOutLen
			if minOut < minXOFOutputBits {
				return g, fmt.Errorf("%w: test group %d: minOutLen %d below %d", acvp.ErrInvalidArgument, g.id, minOut, minXOFOutputBits)
			}
			if maxOut > maxXOFOutputBits {
				return g, fmt.Errorf("%w: test group %d: maxOutLen %d above %d", acvp.ErrInvalidArgument, g.id, maxOut, maxXOFOutputBits)
			}
			if minOut > maxOut {
				return g, fmt.Errorf("%w: test group %d: minOutLen %d exceeds maxOutLen %d", acvp.ErrInvalidArgument, g.id, minOut, maxOut)
			}
			g.minOutLen, g.maxOutLen = minOut, maxOut
		} else if req.MCTVersion == nil {
			// SHA-3 groups may omit the version; the legacy families
			// must name one.
			if family == FamilyLegacy {
				return g, fmt.Errorf("%w: test group %d: missing mctVersion", acvp.ErrMalformedInput, g.id)
			}
			g.mctVersion = MCTVersionStandard
		} else {
			version, ok := parseMCTVersion(*req.MCTVersion)
			if !ok {
				return g, fmt.Errorf("%w: test group %d: unknown mctVersion %q", acvp.ErrInvalidArgument, g.id, *req.MCTVersion)
			}
			g.mctVersion = version
		}
	}

	g.cases = make([]vectorCase, 0, len(req.Tests))
	for i := range req.Tests {
		c, err := buildCase(alg, &g, &req.Tests[i])
		if err != nil {
			return g, err
		}
		g.cases = append(g.cases, c)
	}
	return g, nil
}

func buildCase(alg Algorithm, g *vectorGroup, req *testCaseRequest) (vectorCase, error) {
	c := vectorCase{id: req.TcID}
	if g.testType == TestTypeLDT {
		return buildLargeDataCase(c, req.LargeMsg)
	}

	if req.Msg == nil {
		return c, fmt.Errorf("%w: test case %d: missing msg", acvp.ErrMalformedInput, c.id)
	}
	maxChars := maxMsgChars
	if alg.Family() == FamilySHAKE {
		maxChars = maxShakeMsgChars
	}
	if len(*req.Msg) > maxChars {
		return c, fmt.Errorf("%w: test case %d: msg is %d characters, want at most %d", acvp.ErrInvalidArgument, c.id, len(*req.Msg), maxChars)
	}
	c.msgHex = *req.Msg

	if alg.Family() == FamilySHAKE && g.testType != TestTypeMCT {
		if req.OutLen == nil {
			return c, fmt.Errorf("%w: test case %d: missing outLen", acvp.ErrMalformedInput, c.id)
		}
		if *req.OutLen < minXOFOutputBits || *req.OutLen > maxXOFOutputBits {
			return c, fmt.Errorf("%w: test case %d: outLen %d outside [%d, %d]", acvp.ErrInvalidArgument, c.id, *req.OutLen, minXOFOutputBits, maxXOFOutputBits)
		}
		c.outLenBits = *req.OutLen
	}
	return c, nil
}

func buildLargeDataCase(c vectorCase, req *largeMsgRequest) (vectorCase, error) {
	if req == nil {
		return c, fmt.Errorf("%w: test case %d: missing largeMsg", acvp.ErrMalformedInput, c.id)
	}
	if req.Content == nil {
		return c, fmt.Errorf("%w: test case %d: missing largeMsg.content", acvp.ErrMalformedInput, c.id)
	}
	if req.ContentLength == nil {
		return c, fmt.Errorf("%w: test case %d: missing largeMsg.contentLength", acvp.ErrMalformedInput, c.id)
	}
	if req.FullLength == nil {
		return c, fmt.Errorf("%w: test case %d: missing largeMsg.fullLength", acvp.ErrMalformedInput, c.id)
	}
	if req.ExpansionTechnique == nil {
		return c, fmt.Errorf("%w: test case %d: missing largeMsg.expansionTechnique", acvp.ErrMalformedInput, c.id)
	}
	if len(*req.Content) > maxMsgChars {
		return c, fmt.Errorf("%w: test case %d: content is %d characters, want at most %d", acvp.ErrInvalidArgument, c.id, len(*req.Content), maxMsgChars)
	}
	// contentLength is in bits; the hex content must decode to exactly
	// that many bytes.
	if declared, got := *req.ContentLength/8, int64(len(*req.Content)/2); got != declared {
		return c, fmt.Errorf("%w: test case %d: content is %d bytes, contentLength declares %d", acvp.ErrInvalidArgument, c.id, got, declared)
	}
	if *req.FullLength < 0 {
		return c, fmt.Errorf("%w: test case %d: fullLength %d is negative", acvp.ErrInvalidArgument, c.id, *req.FullLength)
	}
	method, ok := parseExpansionMethod(*req.ExpansionTechnique)
	if !ok {
		return c, fmt.Errorf("%w: test case %d: unknown expansionTechnique %q", acvp.ErrInvalidArgument, c.id, *req.ExpansionTechnique)
	}
	c.msgHex = *req.Content
	c.expandedLen = *req.FullLength / 8
	c.expansion = method
	return c, nil
}
