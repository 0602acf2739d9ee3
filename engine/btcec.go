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
	"github.com/CovenantSQL/curvebind/crypto/asymmetric"
	"github.com/CovenantSQL/curvebind/crypto/hash"
)

// BtcecEngine runs on the btcsuite curve through crypto/asymmetric.
type BtcecEngine struct {
	suite hash.HashSuite
}

// NewBtcecEngine returns a btcec engine digesting with suite.
func NewBtcecEngine(suite hash.HashSuite) *BtcecEngine {
	return &BtcecEngine{suite: suite}
}

// Name implements Engine.Name.
func (e *BtcecEngine) Name() string { return BTCEC }

// PublicKey implements Engine.PublicKey.
func (e *BtcecEngine) PublicKey(secretKey []byte, compressed bool) []byte {
	return asymmetric.DerivePublicKey(secretKey, compressed)
}

// Sign implements Engine.Sign.
func (e *BtcecEngine) Sign(secretKey, message []byte) ([]byte, byte, error) {
	return asymmetric.Sign(secretKey, e.suite.Sum(message))
}

// Verify implements Engine.Verify.
func (e *BtcecEngine) Verify(publicKey, sig, message []byte) bool {
	return asymmetric.Verify(publicKey, sig, e.suite.Sum(message))
}

// Multiply implements Engine.Multiply.
func (e *BtcecEngine) Multiply(secretKey, publicKey []byte) ([]byte, error) {
	return asymmetric.ScalarMult(secretKey, publicKey)
}
