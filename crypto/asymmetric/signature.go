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

package asymmetric

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// SignatureSize is the byte length of an r||s signature.
const SignatureSize = 64

// compactRecoveryBase is the header offset SignCompact adds for compressed keys.
const compactRecoveryBase = 27 + 4

// Sign generates an ECDSA signature over digest and returns r||s together with the public key
// recovery id in [0, 3]. Produced signature is deterministic (same digest and same key yield the
// same signature) and canonical in accordance with RFC6979 and BIP0062.
func Sign(k []byte, digest []byte) (sig []byte, recovery byte, err error) {
	priv, err := NewPrivateKey(k)
	if err != nil {
		return nil, 0, err
	}
	compact, err := ecdsa.SignCompact((*btcec.PrivateKey)(priv), digest, true)
	if err != nil {
		return nil, 0, err
	}
	return compact[1:], compact[0] - compactRecoveryBase, nil
}

// Verify checks an r||s signature of digest against a SEC1 encoded public key. Malformed keys,
// r or s outside [1, N-1] and mismatching signatures all report false.
func Verify(publicKey []byte, sig []byte, digest []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	pub, err := ParsePubKey(publicKey)
	if err != nil {
		return false
	}
	var r, s btcec.ModNScalar
	if r.SetByteSlice(sig[:32]) || r.IsZero() {
		return false
	}
	if s.SetByteSlice(sig[32:]) || s.IsZero() {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(digest, (*btcec.PublicKey)(pub))
}
