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
)

// Monte Carlo engines. Each runs mctOuterIterations outer iterations over
// the case's working state and emits one result record per outer
// iteration. A module failure, or a working-state copy that does not fit
// its buffer, aborts the test case.

// legacyMCT runs the SHA-1 and SHA-2 procedure. Every outer iteration
// seeds the rolling messages m1, m2, m3 with the current seed, then a
// thousand times asks the module to digest their concatenation and slides
// the window: m1 takes m2, m2 takes m3, m3 takes the new digest. The last
// digest becomes the record and the next seed. The message buffer keeps
// the initial seed throughout; the module reads it as the construction
// length under the alternate version.
func legacyMCT(module Module, tc *TestCase) ([]*resultRecord, error) {
	seed := tc.msg.Bytes()
	records := make([]*resultRecord, 0, mctOuterIterations)
	for i := 0; i < mctOuterIterations; i++ {
		for _, m := range []*bytebuf.Buffer{&tc.m1, &tc.m2, &tc.m3} {
			if err := m.Set(seed); err != nil {
				return nil, fmt.Errorf("%w: test case %d: seeding rolling messages: %v", acvp.ErrInternal, tc.id, err)
			}
		}
		for j := 0; j < mctInnerIterations; j++ {
			if err := module.ComputeDigest(tc); err != nil {
				return nil, fmt.Errorf("%w: test case %d: %v", acvp.ErrCryptoModuleFailed, tc.id, err)
			}
			if err := tc.m1.Set(tc.m2.Bytes()); err != nil {
				return nil, fmt.Errorf("%w: test case %d: rolling message update: %v", acvp.ErrInternal, tc.id, err)
			}
			if err := tc.m2.Set(tc.m3.Bytes()); err != nil {
				return nil, fmt.Errorf("%w: test case %d: rolling message update: %v", acvp.ErrInternal, tc.id, err)
			}
			if err := tc.m3.Set(tc.md.Bytes()); err != nil {
				return nil, fmt.Errorf("%w: test case %d: rolling message update: %v", acvp.ErrInternal, tc.id, err)
			}
		}
		record, err := newResultRecord(tc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
		seed = tc.md.Bytes()
	}
	return records, nil
}

// sha3MCT runs the SHA-3 procedure. Each outer iteration walks rounds
// 0 through mctInnerIterations: round 0 digests the message as it stands,
// every later round first replaces the message with the previous digest,
// and the final round performs only the replacement, leaving the seed for
// the next outer iteration. Exactly mctInnerIterations digests are
// computed per outer iteration and the last one becomes the record. Under
// the alternate version replacements are truncated or zero-padded to the
// initial seed length.
func sha3MCT(module Module, tc *TestCase) ([]*resultRecord, error) {
	seedLen := tc.msg.Len()
	records := make([]*resultRecord, 0, mctOuterIterations)
	for i := 0; i < mctOuterIterations; i++ {
		for j := 0; j <= mctInnerIterations; j++ {
			if j != 0 {
				var err error
				if tc.mctVersion == MCTVersionAlternate {
					err = tc.msg.SetFixed(tc.md.Bytes(), seedLen)
				} else {
					err = tc.msg.Set(tc.md.Bytes())
				}
				if err != nil {
					return nil, fmt.Errorf("%w: test case %d: message update: %v", acvp.ErrInternal, tc.id, err)
				}
				if j == mctInnerIterations {
					break
				}
			}
			if err := module.ComputeDigest(tc); err != nil {
				return nil, fmt.Errorf("%w: test case %d: %v", acvp.ErrCryptoModuleFailed, tc.id, err)
			}
		}
		record, err := newResultRecord(tc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// shakeMCT runs the SHAKE procedure. The message of every digest call is
// pinned to shakeMCTMessageLen bytes, rewritten each round from the
// previous digest (truncated or zero-padded); after each digest the next
// requested output length is derived from the digest's trailing two
// bytes. As in the SHA-3 procedure, the final round of an outer iteration
// only rewrites the message, seeding the next iteration. minOutBits and
// maxOutBits carry the group's output-length domain.
func shakeMCT(module Module, tc *TestCase, minOutBits, maxOutBits int) ([]*resultRecord, error) {
	minOutBytes := minOutBits / 8
	maxOutBytes := maxOutBits / 8
	outRange := maxOutBytes - minOutBytes + 1

	// The first request asks for the largest whole-byte length allowed.
	tc.xofLen = maxOutBits / 8

	if err := tc.msg.SetFixed(tc.msg.Bytes(), shakeMCTMessageLen); err != nil {
		return nil, fmt.Errorf("%w: test case %d: message update: %v", acvp.ErrInternal, tc.id, err)
	}

	records := make([]*resultRecord, 0, mctOuterIterations)
	for i := 0; i < mctOuterIterations; i++ {
		for j := 0; j <= mctInnerIterations; j++ {
			if j != 0 {
				if err := tc.msg.SetFixed(tc.md.Bytes(), shakeMCTMessageLen); err != nil {
					return nil, fmt.Errorf("%w: test case %d: message update: %v", acvp.ErrInternal, tc.id, err)
				}
				if j == mctInnerIterations {
					break
				}
			}
			if err := module.ComputeDigest(tc); err != nil {
				return nil, fmt.Errorf("%w: test case %d: %v", acvp.ErrCryptoModuleFailed, tc.id, err)
			}
			md := tc.md.Bytes()
			if len(md) < 2 {
				return nil, fmt.Errorf("%w: test case %d: digest of %d bytes is too short to derive the next output length", acvp.ErrCryptoModuleFailed, tc.id, len(md))
			}
			// The trailing 16 bits of the digest, read most significant
			// byte first, select the next length within the domain.
			v := int(md[len(md)-2])<<8 | int(md[len(md)-1])
			tc.xofLen = minOutBytes + v%outRange
		}
		record, err := newResultRecord(tc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
