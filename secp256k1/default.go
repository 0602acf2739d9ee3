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

import "github.com/CovenantSQL/curvebind/engine"

var defaultBinding = New(engine.Default())

// Default returns the package-level binding over the btcec engine.
func Default() *Binding {
	return defaultBinding
}

// PublicKey derives a public key with the default binding.
func PublicKey(secretKey []byte, compressed bool) ([]byte, error) {
	return defaultBinding.PublicKey(secretKey, compressed)
}

// Sign signs message with the default binding.
func Sign(secretKey, message []byte) ([]byte, error) {
	return defaultBinding.Sign(secretKey, message)
}

// Verify checks a signature with the default binding.
func Verify(publicKey, signature, message []byte) (bool, error) {
	return defaultBinding.Verify(publicKey, signature, message)
}

// Multiply multiplies a point with the default binding.
func Multiply(secretKey, publicKey []byte) ([]byte, error) {
	return defaultBinding.Multiply(secretKey, publicKey)
}
