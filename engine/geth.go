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

package engine

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/CovenantSQL/curvebind/crypto/asymmetric"
	"github.com/CovenantSQL/curvebind/crypto/hash"
)

// GethEngine delegates to go-ethereum's crypto package, which links
// libsecp256k1 under cgo and falls back to btcec otherwise.
type GethEngine struct {
	suite hash.HashSuite
}

// NewGethEngine returns a go-ethereum engine digesting with suite.
func NewGethEngine(suite hash.HashSuite) *GethEngine {
	return &GethEngine{suite: suite}
}

// Name implements Engine.Name.
func (e *GethEngine) Name() string { return GETH }

// PublicKey implements Engine.PublicKey.
func (e *GethEngine) PublicKey(secretKey []byte, compressed bool) []byte {
	// libsecp256k1 reports nil coordinates for zero or overflowing scalars
	x, y := crypto.S256().ScalarBaseMult(secretKey)
	return asymmetric.MarshalPoint(x, y, compressed)
}

// Sign implements Engine.Sign.
func (e *GethEngine) Sign(secretKey, message []byte) ([]byte, byte, error) {
	priv, err := crypto.ToECDSA(secretKey)
	if err != nil {
		return nil, 0, errors.Wrap(ErrInvalidScalar, err.Error())
	}
	sig, err := crypto.Sign(e.suite.Sum(message), priv)
	if err != nil {
		return nil, 0, errors.Wrap(err, "geth sign")
	}
	// [R || S || V], V is the recovery id
	return sig[:64], sig[64], nil
}

// Verify implements Engine.Verify.
func (e *GethEngine) Verify(publicKey, sig, message []byte) bool {
	if !asymmetric.ValidPointFormat(publicKey) {
		return false
	}
	return crypto.VerifySignature(publicKey, e.suite.Sum(message), sig)
}

// Multiply implements Engine.Multiply.
func (e *GethEngine) Multiply(secretKey, publicKey []byte) ([]byte, error) {
	if _, err := crypto.ToECDSA(secretKey); err != nil {
		return nil, errors.Wrap(ErrInvalidScalar, err.Error())
	}
	pub, err := parseGethPubKey(publicKey)
	if err != nil {
		return nil, err
	}
	x, y := crypto.S256().ScalarMult(pub.X, pub.Y, secretKey)
	if x == nil || y == nil || (x.Sign() == 0 && y.Sign() == 0) {
		return nil, ErrPointAtInfinity
	}
	return asymmetric.MarshalPoint(x, y, false), nil
}

func parseGethPubKey(b []byte) (pub *ecdsa.PublicKey, err error) {
	switch len(b) {
	case asymmetric.CompressedSize:
		pub, err = crypto.DecompressPubkey(b)
	case asymmetric.UncompressedSize:
		pub, err = crypto.UnmarshalPubkey(b)
	default:
		err = errors.Errorf("unexpected public key length %d", len(b))
	}
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPoint, err.Error())
	}
	return pub, nil
}
