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
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"

	"github.com/CovenantSQL/curvebind/crypto/asymmetric"
	"github.com/CovenantSQL/curvebind/crypto/hash"
)

// compactHeaderCompressed is the first compact signature byte for recovery id 0 of a
// compressed key.
const compactHeaderCompressed = 27 + 4

// DcrdEngine works on Jacobian points and ModNScalar values of the decred
// secp256k1 package, without big.Int conversions.
type DcrdEngine struct {
	suite hash.HashSuite
}

// NewDcrdEngine returns a dcrd engine digesting with suite.
func NewDcrdEngine(suite hash.HashSuite) *DcrdEngine {
	return &DcrdEngine{suite: suite}
}

// Name implements Engine.Name.
func (e *DcrdEngine) Name() string { return DCRD }

// PublicKey implements Engine.PublicKey.
func (e *DcrdEngine) PublicKey(secretKey []byte, compressed bool) []byte {
	var k secp.ModNScalar
	k.SetByteSlice(secretKey)

	var p secp.JacobianPoint
	secp.ScalarBaseMultNonConst(&k, &p)
	p.ToAffine()

	pub := secp.NewPublicKey(&p.X, &p.Y)
	if compressed {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}

// Sign implements Engine.Sign.
func (e *DcrdEngine) Sign(secretKey, message []byte) ([]byte, byte, error) {
	k, err := parseScalar(secretKey)
	if err != nil {
		return nil, 0, err
	}
	compact := ecdsa.SignCompact(secp.NewPrivateKey(k), e.suite.Sum(message), true)
	return compact[1:], compact[0] - compactHeaderCompressed, nil
}

// Verify implements Engine.Verify.
func (e *DcrdEngine) Verify(publicKey, sig, message []byte) bool {
	if len(sig) != 64 || !asymmetric.ValidPointFormat(publicKey) {
		return false
	}
	pub, err := secp.ParsePubKey(publicKey)
	if err != nil {
		return false
	}
	var r, s secp.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow || s.IsZero() {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(e.suite.Sum(message), pub)
}

// Multiply implements Engine.Multiply.
func (e *DcrdEngine) Multiply(secretKey, publicKey []byte) ([]byte, error) {
	k, err := parseScalar(secretKey)
	if err != nil {
		return nil, err
	}
	if !asymmetric.ValidPointFormat(publicKey) {
		return nil, errors.Wrap(ErrInvalidPoint, "not a compressed or uncompressed point")
	}
	pub, err := secp.ParsePubKey(publicKey)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPoint, err.Error())
	}

	var point, result secp.JacobianPoint
	pub.AsJacobian(&point)
	secp.ScalarMultNonConst(k, &point, &result)
	// the identity maps to (0, 0), which is not on the curve
	result.ToAffine()
	if result.X.IsZero() && result.Y.IsZero() {
		return nil, ErrPointAtInfinity
	}

	return secp.NewPublicKey(&result.X, &result.Y).SerializeUncompressed(), nil
}

func parseScalar(b []byte) (*secp.ModNScalar, error) {
	var k secp.ModNScalar
	if overflow := k.SetByteSlice(b); overflow || len(b) != secp.PrivKeyBytesLen {
		return nil, ErrInvalidScalar
	}
	if k.IsZero() {
		return nil, ErrInvalidScalar
	}
	return &k, nil
}
