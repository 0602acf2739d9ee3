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

import (
	"github.com/pkg/errors"

	"github.com/CovenantSQL/curvebind/conf"
	"github.com/CovenantSQL/curvebind/crypto/hash"
	"github.com/CovenantSQL/curvebind/engine"
	"github.com/CovenantSQL/curvebind/utils/log"
)

// Observer receives one (operation, outcome) pair per binding call.
type Observer interface {
	Observe(op, outcome string)
}

type nopObserver struct{}

func (nopObserver) Observe(string, string) {}

// Option configures a Binding.
type Option func(*Binding)

// WithObserver reports every call outcome to o.
func WithObserver(o Observer) Option {
	return func(b *Binding) {
		if o != nil {
			b.observer = o
		}
	}
}

// WithLogger logs through entry instead of the standard logger.
func WithLogger(entry *log.Entry) Option {
	return func(b *Binding) {
		if entry != nil {
			b.log = entry
		}
	}
}

// Binding validates raw byte inputs and delegates to a curve engine. It holds
// no mutable state and is safe for concurrent use.
type Binding struct {
	engine   engine.Engine
	observer Observer
	log      *log.Entry
}

// New returns a binding over e.
func New(e engine.Engine, opts ...Option) *Binding {
	b := &Binding{
		engine:   e,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = log.WithField("engine", e.Name())
	} else {
		b.log = b.log.WithField("engine", e.Name())
	}
	return b
}

// NewFromConfig builds a binding over the engine and digest named by cfg. A
// configured log level applies to the binding's own logger, unless WithLogger
// supplies one.
func NewFromConfig(cfg *conf.Config, opts ...Option) (*Binding, error) {
	if cfg == nil {
		cfg = conf.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	suite, err := hash.SuiteByName(cfg.Digest)
	if err != nil {
		return nil, errors.Wrap(err, "resolve digest failed")
	}
	e, err := engine.New(cfg.Engine, suite)
	if err != nil {
		return nil, errors.Wrap(err, "resolve engine failed")
	}
	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, errors.Wrap(err, "invalid LogLevel")
		}
		opts = append([]Option{WithLogger(log.NewLevelEntry(level))}, opts...)
	}
	b := New(e, opts...)
	b.log.WithField("digest", suite.Name).Debug("binding configured")
	return b, nil
}

// Engine returns the name of the underlying engine.
func (b *Binding) Engine() string {
	return b.engine.Name()
}

// PublicKey derives the public key of secretKey, 33 bytes when compressed and 65 bytes otherwise.
// The secret key value is not checked: out of range keys give an unspecified key, never an error.
func (b *Binding) PublicKey(secretKey []byte, compressed bool) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, b.reject(OpPublicKey, OutcomeInvalidLength, errors.Wrap(ErrInvalidLength, msgSecretKeyLength))
	}
	pub := b.engine.PublicKey(secretKey, compressed)
	b.observer.Observe(OpPublicKey, OutcomeOK)
	return pub, nil
}

// Sign signs message with secretKey and returns r || s || 0x00.
func (b *Binding) Sign(secretKey, message []byte) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, b.reject(OpSign, OutcomeInvalidLength, errors.Wrap(ErrInvalidLength, msgSecretKeyLength))
	}
	if len(message) == 0 {
		return nil, b.reject(OpSign, OutcomeEmptyInput, errors.Wrap(ErrEmptyInput, msgEmptySignData))
	}

	// the recovery id is not part of the output
	rs, _, err := b.engine.Sign(secretKey, message)
	if err == nil && len(rs) != rsSize {
		err = errors.Errorf("engine returned %d signature bytes", len(rs))
	}
	if err != nil {
		return nil, b.fail(OpSign, OutcomeSigningFailed, errors.Wrap(ErrSigningFailed, err.Error()))
	}

	sig := make([]byte, SignatureSize)
	copy(sig, rs)
	b.observer.Observe(OpSign, OutcomeOK)
	return sig, nil
}

// Verify reports whether signature is a valid signature of message by publicKey.
// Only the shape of the inputs produces errors; any cryptographic mismatch is false.
func (b *Binding) Verify(publicKey, signature, message []byte) (bool, error) {
	if !validPublicKeySize(len(publicKey)) {
		return false, b.reject(OpVerify, OutcomeInvalidLength, errors.Wrap(ErrInvalidLength, msgPublicKeyLength))
	}
	if len(signature) != SignatureSize {
		return false, b.reject(OpVerify, OutcomeInvalidLength, errors.Wrap(ErrInvalidLength, msgSignatureLength))
	}
	if len(message) == 0 {
		return false, b.reject(OpVerify, OutcomeEmptyInput, errors.Wrap(ErrEmptyInput, msgEmptyVerifyData))
	}

	ok := b.engine.Verify(publicKey, signature[:rsSize], message)
	if ok {
		b.observer.Observe(OpVerify, OutcomeOK)
	} else {
		b.observer.Observe(OpVerify, OutcomeRejected)
	}
	return ok, nil
}

// Multiply computes secretKey * publicKey and returns the 65-byte uncompressed point.
// No key derivation function is applied.
func (b *Binding) Multiply(secretKey, publicKey []byte) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, b.reject(OpMultiply, OutcomeInvalidLength, errors.Wrap(ErrInvalidLength, msgSecretKeyLength))
	}
	if !validPublicKeySize(len(publicKey)) {
		return nil, b.reject(OpMultiply, OutcomeInvalidLength, errors.Wrap(ErrInvalidLength, msgPublicKeyLength))
	}

	point, err := b.engine.Multiply(secretKey, publicKey)
	if err == nil && len(point) != PointSize {
		err = errors.Errorf("engine returned %d point bytes", len(point))
	}
	if err != nil {
		return nil, b.fail(OpMultiply, OutcomeMultiplyFailed, errors.Wrap(ErrMultiplyFailed, err.Error()))
	}
	b.observer.Observe(OpMultiply, OutcomeOK)
	return point, nil
}

func (b *Binding) reject(op, outcome string, err error) error {
	b.observer.Observe(op, outcome)
	b.log.WithField("op", op).WithError(err).Debug("input rejected")
	return err
}

func (b *Binding) fail(op, outcome string, err error) error {
	b.observer.Observe(op, outcome)
	b.log.WithField("op", op).WithError(err).Warn("engine failed")
	return err
}
