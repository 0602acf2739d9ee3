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
Package asymmetric wraps the btcsuite secp256k1 implementation with the raw
byte conventions of the binding layer.

Secret keys are 32-byte big-endian scalars, public keys are SEC1 points (33
bytes compressed or 65 bytes 0x04 uncompressed, hybrid encodings are refused)
and signatures handed in and out
of this package are the 64-byte r||s concatenation. Every function here takes
a digest, never a message; hashing is done by the caller.

Keys are derived through the PrivateKey and PublicKey wrappers, variable base
multiplication uses the affine big.Int interface of btcec.KoblitzCurve and
signing goes through btcec/ecdsa compact signatures, which are RFC6979
deterministic and low-S.
*/
package asymmetric
