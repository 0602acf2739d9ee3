/*
 * Copyright 2019 The CovenantSQL Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package hash

import (
	"sort"

	"github.com/pkg/errors"
)

const (
	// SHA256 names the single SHA-256 suite, the default message digest.
	SHA256 = "sha256"
	// SHA256D names the SHA-256d suite.
	SHA256D = "sha256d"
	// THash names the sha256(blake2b-512) suite.
	THash = "thash"
	// Keccak256 names the legacy Keccak-256 suite.
	Keccak256 = "keccak256"
)

// ErrUnknownSuite indicates a digest suite name with no registered implementation.
var ErrUnknownSuite = errors.New("unknown hash suite")

// HashSuite contains the hash length and the func handler.
type HashSuite struct {
	Name     string
	HashLen  int
	HashFunc func([]byte) []byte
}

var suites = map[string]HashSuite{
	SHA256:    {Name: SHA256, HashLen: HashBSize, HashFunc: HashB},
	SHA256D:   {Name: SHA256D, HashLen: HashBSize, HashFunc: DoubleHashB},
	THash:     {Name: THash, HashLen: HashBSize, HashFunc: THashB},
	Keccak256: {Name: Keccak256, HashLen: 32, HashFunc: Keccak256B},
}

// DefaultSuite returns the single SHA-256 suite.
func DefaultSuite() HashSuite {
	return suites[SHA256]
}

// SuiteByName returns the suite registered under name, an empty name selects the default.
func SuiteByName(name string) (HashSuite, error) {
	if name == "" {
		return DefaultSuite(), nil
	}
	s, ok := suites[name]
	if !ok {
		return HashSuite{}, errors.Wrapf(ErrUnknownSuite, "suite %q", name)
	}
	return s, nil
}

// SuiteNames returns the registered suite names in sorted order.
func SuiteNames() []string {
	names := make([]string, 0, len(suites))
	for n := range suites {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sum digests b with the suite.
func (s HashSuite) Sum(b []byte) []byte {
	return s.HashFunc(b)
}
