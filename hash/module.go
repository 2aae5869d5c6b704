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

// Module is the hash implementation under test.
//
// ComputeDigest reads the working state of one test case, computes the
// digest the case asks for, and records it with SetDigest. What "the
// message" is depends on the case:
//
//   - For AFT and VOT cases it is Message; VOT digests must be XOFLen
//     bytes long.
//   - For legacy Monte Carlo cases it is the concatenation m1 || m2 || m3
//     of RollingMessages, truncated or zero-padded to the length of
//     Message when MCTVersion is MCTVersionAlternate.
//   - For SHA-3 and SHAKE Monte Carlo cases it is Message as the harness
//     rewrote it for the current round; SHAKE digests must be XOFLen
//     bytes long.
//   - For LDT cases it is Message expanded to ExpandedLen bytes with the
//     Expansion rule. Implementations should stream the expansion rather
//     than materialize it; full lengths reach gigabytes.
//
// A non-nil error marks the module as failed and aborts the whole vector
// set. Implementations must not retain tc or any slice obtained from it
// after returning.
type Module interface {
	ComputeDigest(tc *TestCase) error
}
