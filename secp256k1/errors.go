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

import "github.com/pkg/errors"

var (
	// ErrInvalidLength indicates a secret key, public key or signature of the wrong size.
	ErrInvalidLength = errors.New("invalid length")
	// ErrEmptyInput indicates an empty message.
	ErrEmptyInput = errors.New("empty input")
	// ErrSigningFailed indicates the engine could not sign.
	ErrSigningFailed = errors.New("signing failed")
	// ErrMultiplyFailed indicates the engine could not multiply.
	ErrMultiplyFailed = errors.New("multiply failed")

	// ErrUnknownFunction indicates a Module call of an unregistered name.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrArgCount indicates a Module call with too few or too many arguments.
	ErrArgCount = errors.New("wrong number of arguments")
	// ErrArgType indicates a Module argument of an unsupported type.
	ErrArgType = errors.New("wrong argument type")
)

const (
	msgSecretKeyLength = "invalid length of secret key"
	msgPublicKeyLength = "invalid length of public key"
	msgSignatureLength = "invalid length of signature"
	msgEmptySignData   = "empty data to sign"
	msgEmptyVerifyData = "empty data to verify"
)
