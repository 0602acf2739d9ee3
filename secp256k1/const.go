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

package secp256k1

const (
	// SecretKeySize is the length of a secret key.
	SecretKeySize = 32
	// PublicKeySizeCompressed is the length of a 0x02/0x03 prefixed public key.
	PublicKeySizeCompressed = 33
	// PublicKeySizeUncompressed is the length of a 0x04 prefixed public key.
	PublicKeySizeUncompressed = 65
	// SignatureSize is the length of r || s || reserved.
	SignatureSize = 65
	// PointSize is the length of a multiplication result.
	PointSize = 65

	rsSize = 64
)

// Operation names, shared by the dynamic call surface, logs and observers.
const (
	OpPublicKey = "publickey"
	OpSign      = "sign"
	OpVerify    = "verify"
	OpMultiply  = "multiply"
)

// Outcomes reported to an Observer.
const (
	OutcomeOK             = "ok"
	OutcomeRejected       = "rejected"
	OutcomeInvalidLength  = "invalid_length"
	OutcomeEmptyInput     = "empty_input"
	OutcomeSigningFailed  = "signing_failed"
	OutcomeMultiplyFailed = "multiply_failed"
)

func validPublicKeySize(n int) bool {
	return n == PublicKeySizeCompressed || n == PublicKeySizeUncompressed
}
