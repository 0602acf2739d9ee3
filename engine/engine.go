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

// Package engine provides the secp256k1 curve engines the binding layer
// delegates to.
//
// An engine owns the arithmetic: it digests messages with its hash suite,
// derives public keys, produces and checks r||s signatures and multiplies
// points. It assumes lengths have already been checked by its caller but
// never trusts values: out-of-range scalars and points off the curve are
// reported as errors (or false), not panics.
package engine

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/CovenantSQL/curvebind/crypto/asymmetric"
	"github.com/CovenantSQL/curvebind/crypto/hash"
)

const (
	// BTCEC names the btcsuite engine, the default.
	BTCEC = "btcec"
	// DCRD names the decred engine.
	DCRD = "dcrd"
	// GETH names the go-ethereum engine, libsecp256k1 when built with cgo.
	GETH = "geth"
)

var (
	// ErrInvalidScalar indicates a secret scalar that is zero or not below the curve order.
	ErrInvalidScalar = asymmetric.ErrInvalidScalar
	// ErrInvalidPoint indicates a public key that does not decode to a curve point.
	ErrInvalidPoint = asymmetric.ErrInvalidPoint
	// ErrPointAtInfinity indicates a multiplication result at the identity.
	ErrPointAtInfinity = asymmetric.ErrPointAtInfinity
	// ErrUnknownEngine indicates an engine name with no registered constructor.
	ErrUnknownEngine = errors.New("unknown curve engine")
)

// Engine is the curve arithmetic consumed by the binding.
type Engine interface {
	// Name returns the registry name of the engine.
	Name() string
	// PublicKey derives the SEC1 public key of a 32-byte secret, 33 bytes when compressed and
	// 65 bytes otherwise. It never fails; invalid secrets give an unspecified point encoding.
	PublicKey(secretKey []byte, compressed bool) []byte
	// Sign digests message and returns the 64-byte r||s signature and its recovery id.
	Sign(secretKey, message []byte) (sig []byte, recovery byte, err error)
	// Verify digests message and checks the 64-byte r||s signature.
	Verify(publicKey, sig, message []byte) bool
	// Multiply returns secretKey*publicKey as a 65-byte uncompressed point.
	Multiply(secretKey, publicKey []byte) ([]byte, error)
}

// Constructor builds an engine digesting messages with suite.
type Constructor func(suite hash.HashSuite) Engine

var registry = map[string]Constructor{
	BTCEC: func(suite hash.HashSuite) Engine { return NewBtcecEngine(suite) },
	DCRD:  func(suite hash.HashSuite) Engine { return NewDcrdEngine(suite) },
	GETH:  func(suite hash.HashSuite) Engine { return NewGethEngine(suite) },
}

var defaultEngine = NewBtcecEngine(hash.DefaultSuite())

// New returns the engine registered under name, an empty name selects btcec.
func New(name string, suite hash.HashSuite) (Engine, error) {
	if name == "" {
		name = BTCEC
	}
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEngine, "engine %q", name)
	}
	if suite.HashFunc == nil {
		suite = hash.DefaultSuite()
	}
	return ctor(suite), nil
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Default returns the shared btcec engine digesting with single SHA-256.
func Default() Engine {
	return defaultEngine
}
