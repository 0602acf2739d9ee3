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

/*
Package secp256k1 exposes secp256k1 public key derivation, ECDSA signing and
verification and point multiplication over raw byte buffers.

Every entry point checks the shape of its inputs before anything reaches the
curve: secret keys are exactly 32 bytes, public keys 33 or 65 bytes,
signatures 65 bytes and messages non-empty. Shape violations are reported
with ErrInvalidLength or ErrEmptyInput. Value problems (a scalar outside
[1, N-1], a point off the curve) are left to the engine and surface as
ErrSigningFailed, ErrMultiplyFailed or a false verification.

Signatures are r(32) || s(32) || 0x00. The final byte is reserved and always
zero; verification ignores it. Messages are digested by the engine's hash
suite, single SHA-256 by default.

The package-level functions use a binding over the btcec engine. Bindings
over other engines or digests are built with New or NewFromConfig, and
Module offers a name based dispatch table for embedding interpreters.
*/
package secp256k1
