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

// Package hash provides the message digest suites used before signing and
// verification.
//
// Every engine digests the message with exactly one suite. The default is a
// single SHA-256, the digest the binding has always signed; SHA-256d, THash
// and Keccak-256 are selectable through configuration for callers that sign
// over those digests.
//
// Q: WHY SHA-256 twice?
//
// A: SHA-256(SHA-256(x)) was proposed by Ferguson and Schneier in their excellent
// book "Practical Cryptography" (later updated by Ferguson, Schneier, and Kohno
// and renamed "Cryptography Engineering") as a way to make SHA-256 invulnerable
// to "length-extension" attack. They called it "SHA-256d".
// (From: https://crypto.stackexchange.com/a/884)
package hash
