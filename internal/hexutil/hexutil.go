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

// Package hexutil converts between hexadecimal strings and capacity-bounded
// byte sequences.
package hexutil

import (
	"encoding/hex"
	"fmt"
)

// Decode converts a hexadecimal string into bytes. It fails if s is not
// valid even-length hex or if the decoded form would exceed maxBytes.
func Decode(s string, maxBytes int) ([]byte, error) {
	if len(s) > 2*maxBytes {
		return nil, fmt.Errorf("hexutil: %d hex characters exceed capacity of %d bytes", len(s), maxBytes)
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hexutil: %v", err)
	}
	return decoded, nil
}

// Encode converts b into a lowercase hexadecimal string. It fails if the
// encoded form would exceed maxChars characters.
func Encode(b []byte, maxChars int) (string, error) {
	if 2*len(b) > maxChars {
		return "", fmt.Errorf("hexutil: %d bytes encode to %d characters, exceeding capacity %d", len(b), 2*len(b), maxChars)
	}
	return hex.EncodeToString(b), nil
}
