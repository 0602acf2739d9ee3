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
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
)

const (
	// ScalarSize is the byte length of a secret scalar.
	ScalarSize = btcec.PrivKeyBytesLen
	// CoordinateSize is the byte length of one affine coordinate.
	CoordinateSize = 32
	// CompressedSize is the byte length of a compressed SEC1 point.
	CompressedSize = btcec.PubKeyBytesLenCompressed
	// UncompressedSize is the byte length of an uncompressed SEC1 point.
	UncompressedSize = 1 + 2*CoordinateSize
)

var (
	// ErrInvalidScalar indicates a secret scalar that is zero or not below the curve order.
	ErrInvalidScalar = errors.New("scalar out of range")
	// ErrInvalidPoint indicates bytes that do not parse to a point on the curve.
	ErrInvalidPoint = errors.New("invalid curve point")
	// ErrPointAtInfinity indicates an arithmetic result at the identity.
	ErrPointAtInfinity = errors.New("point at infinity")
)

// PrivateKey wraps an ec.PrivateKey as a convenience mainly for signing things with the the
// private key without having to directly import the ecdsa package.
type PrivateKey btcec.PrivateKey

// PublicKey wraps an ec.PublicKey as a convenience mainly verifying signatures with the the
// public key without having to directly import the ecdsa package.
type PublicKey btcec.PublicKey

// NewPrivateKey returns the private key of a 32-byte scalar in [1, N-1].
func NewPrivateKey(k []byte) (*PrivateKey, error) {
	if len(k) != ScalarSize {
		return nil, ErrInvalidScalar
	}
	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(k); overflow || s.IsZero() {
		return nil, ErrInvalidScalar
	}
	return (*PrivateKey)(btcec.PrivKeyFromScalar(&s)), nil
}

// PrivKeyFromBytes returns a private and public key for `pk' using the secp256k1 curve.
// The scalar is reduced modulo the curve order.
func PrivKeyFromBytes(pk []byte) (*PrivateKey, *PublicKey) {
	priv, pub := btcec.PrivKeyFromBytes(pk)
	return (*PrivateKey)(priv), (*PublicKey)(pub)
}

// Serialize returns the private key as a 256-bit big-endian binary-encoded number, padded to a
// length of 32 bytes.
func (p *PrivateKey) Serialize() []byte {
	return (*btcec.PrivateKey)(p).Serialize()
}

// ValidPointFormat reports whether b is sized and prefixed as a compressed (0x02, 0x03) or
// uncompressed (0x04) SEC1 point. Hybrid encodings are not accepted.
func ValidPointFormat(b []byte) bool {
	switch len(b) {
	case CompressedSize:
		return b[0] == 0x02 || b[0] == 0x03
	case UncompressedSize:
		return b[0] == 0x04
	default:
		return false
	}
}

// ParsePubKey recovers the public key from a compressed or uncompressed SEC1 encoding and checks
// it lies on the curve.
func ParsePubKey(b []byte) (*PublicKey, error) {
	if !ValidPointFormat(b) {
		return nil, errors.Wrap(ErrInvalidPoint, "not a compressed or uncompressed point")
	}
	pub, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPoint, err.Error())
	}
	return (*PublicKey)(pub), nil
}

// Serialize serializes the public key in a 33-byte compressed format.
func (p *PublicKey) Serialize() []byte {
	return (*btcec.PublicKey)(p).SerializeCompressed()
}

// SerializeUncompressed serializes the public key in the 65-byte 0x04 format.
func (p *PublicKey) SerializeUncompressed() []byte {
	return (*btcec.PublicKey)(p).SerializeUncompressed()
}

// X returns the affine x coordinate.
func (p *PublicKey) X() *big.Int {
	return (*btcec.PublicKey)(p).X()
}

// Y returns the affine y coordinate.
func (p *PublicKey) Y() *big.Int {
	return (*btcec.PublicKey)(p).Y()
}

// DerivePublicKey computes k*G for a 32-byte scalar and encodes it in the requested SEC1 form.
// The scalar is reduced modulo the curve order and never rejected: a zero scalar yields the
// all-zero coordinate encoding.
func DerivePublicKey(k []byte, compressed bool) []byte {
	_, pub := PrivKeyFromBytes(k)
	if compressed {
		return pub.Serialize()
	}
	return pub.SerializeUncompressed()
}

// ScalarMult computes k*P for a scalar in [1, N-1] and a SEC1 encoded point and returns the
// 65-byte uncompressed result.
func ScalarMult(k []byte, point []byte) ([]byte, error) {
	priv, err := NewPrivateKey(k)
	if err != nil {
		return nil, err
	}
	pub, err := ParsePubKey(point)
	if err != nil {
		return nil, err
	}
	x, y := btcec.S256().ScalarMult(pub.X(), pub.Y(), priv.Serialize())
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, ErrPointAtInfinity
	}
	return MarshalPoint(x, y, false), nil
}

// MarshalPoint encodes affine coordinates in SEC1 form without checking the point is on the
// curve. Nil coordinates encode as zero.
func MarshalPoint(x, y *big.Int, compressed bool) []byte {
	if x == nil {
		x = new(big.Int)
	}
	if y == nil {
		y = new(big.Int)
	}
	if compressed {
		out := make([]byte, CompressedSize)
		out[0] = 0x02 | byte(y.Bit(0))
		fillCoordinate(out[1:], x)
		return out
	}
	out := make([]byte, UncompressedSize)
	out[0] = 0x04
	fillCoordinate(out[1:1+CoordinateSize], x)
	fillCoordinate(out[1+CoordinateSize:], y)
	return out
}

func fillCoordinate(dst []byte, v *big.Int) {
	if v.Sign() < 0 || v.BitLen() > CoordinateSize*8 {
		v = new(big.Int).Mod(v, btcec.S256().P)
	}
	v.FillBytes(dst)
}
