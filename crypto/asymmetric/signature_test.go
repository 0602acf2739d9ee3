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
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	generatorUncompressed = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	generatorCompressed = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	curveOrder          = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

func scalar(v int64) []byte {
	return new(big.Int).SetInt64(v).FillBytes(make([]byte, ScalarSize))
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestNewPrivateKey(t *testing.T) {
	tests := []struct {
		name  string
		k     []byte
		valid bool
	}{
		{name: "one", k: scalar(1), valid: true},
		{name: "all 0x01", k: bytes.Repeat([]byte{0x01}, 32), valid: true},
		{name: "zero", k: make([]byte, 32), valid: false},
		{name: "order", k: mustHex(curveOrder), valid: false},
		{name: "all 0xff", k: bytes.Repeat([]byte{0xff}, 32), valid: false},
		{name: "short", k: make([]byte, 31), valid: false},
	}
	for _, test := range tests {
		priv, err := NewPrivateKey(test.k)
		if test.valid {
			if err != nil || !bytes.Equal(priv.Serialize(), test.k) {
				t.Errorf("%s: NewPrivateKey got %v, want the key back", test.name, err)
			}
			continue
		}
		if errors.Cause(err) != ErrInvalidScalar {
			t.Errorf("%s: NewPrivateKey got %v, want %v", test.name, err, ErrInvalidScalar)
		}
	}
}

func TestParsePubKey(t *testing.T) {
	Convey("only compressed and 0x04 encodings parse", t, func() {
		pub, err := ParsePubKey(mustHex(generatorCompressed))
		So(err, ShouldBeNil)
		So(hex.EncodeToString(pub.SerializeUncompressed()), ShouldEqual, generatorUncompressed)

		pub, err = ParsePubKey(mustHex(generatorUncompressed))
		So(err, ShouldBeNil)
		So(hex.EncodeToString(pub.Serialize()), ShouldEqual, generatorCompressed)

		for _, prefix := range []byte{0x06, 0x07} {
			hybrid := mustHex(generatorUncompressed)
			hybrid[0] = prefix
			So(ValidPointFormat(hybrid), ShouldBeFalse)
			_, err = ParsePubKey(hybrid)
			So(errors.Cause(err), ShouldEqual, ErrInvalidPoint)
		}

		uncompressedPrefix := mustHex(generatorCompressed)
		uncompressedPrefix[0] = 0x04
		So(ValidPointFormat(uncompressedPrefix), ShouldBeFalse)
		So(ValidPointFormat(nil), ShouldBeFalse)
	})
}

func TestDerivePublicKey(t *testing.T) {
	Convey("scalar one derives the generator", t, func() {
		So(hex.EncodeToString(DerivePublicKey(scalar(1), true)), ShouldEqual, generatorCompressed)
		So(hex.EncodeToString(DerivePublicKey(scalar(1), false)), ShouldEqual, generatorUncompressed)
	})
	Convey("pinned key derives the known point", t, func() {
		k := bytes.Repeat([]byte{0x01}, 32)
		So(hex.EncodeToString(DerivePublicKey(k, true)), ShouldEqual,
			"031b84c5567b126440995d3ed5aaba0565d71e1834604819ff9c17f5e9d5dd078f")
		So(hex.EncodeToString(DerivePublicKey(k, false)), ShouldEqual,
			"041b84c5567b126440995d3ed5aaba0565d71e1834604819ff9c17f5e9d5dd078f"+
				"70beaf8f588b541507fed6a642c5ab42dfdf8120a7f639de5122d47a69a8e8d1")

		_, pub := PrivKeyFromBytes(k)
		So(DerivePublicKey(k, true), ShouldResemble, pub.Serialize())
		So(DerivePublicKey(k, false), ShouldResemble, pub.SerializeUncompressed())
	})
	Convey("zero scalar does not panic", t, func() {
		var out []byte
		So(func() { out = DerivePublicKey(make([]byte, 32), true) }, ShouldNotPanic)
		So(out, ShouldHaveLength, CompressedSize)
	})
}

func TestSignVerify(t *testing.T) {
	Convey("sign and verify a digest", t, func() {
		k := mustHex("eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca22694")
		digest := mustHex("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")

		sig, recovery, err := Sign(k, digest)
		So(err, ShouldBeNil)
		So(sig, ShouldHaveLength, SignatureSize)
		So(recovery, ShouldBeLessThan, 4)

		again, _, err := Sign(k, digest)
		So(err, ShouldBeNil)
		So(again, ShouldResemble, sig)

		So(Verify(DerivePublicKey(k, true), sig, digest), ShouldBeTrue)
		So(Verify(DerivePublicKey(k, false), sig, digest), ShouldBeTrue)

		Convey("a flipped byte fails verification", func() {
			bad := append([]byte{}, sig...)
			bad[10] ^= 0x01
			So(Verify(DerivePublicKey(k, true), bad, digest), ShouldBeFalse)
		})
		Convey("zero r or s fails verification", func() {
			bad := append(make([]byte, 32), sig[32:]...)
			So(Verify(DerivePublicKey(k, true), bad, digest), ShouldBeFalse)
			bad = append(append([]byte{}, sig[:32]...), make([]byte, 32)...)
			So(Verify(DerivePublicKey(k, true), bad, digest), ShouldBeFalse)
		})
		Convey("malformed key or signature length fails verification", func() {
			So(Verify(make([]byte, 33), sig, digest), ShouldBeFalse)
			hybrid := DerivePublicKey(k, false)
			hybrid[0] = 0x06 | hybrid[64]&0x01
			So(Verify(hybrid, sig, digest), ShouldBeFalse)
			So(Verify(DerivePublicKey(k, true), sig[:63], digest), ShouldBeFalse)
		})
	})
	Convey("invalid scalars are not signed with", t, func() {
		_, _, err := Sign(make([]byte, 32), []byte{0x01})
		So(errors.Cause(err), ShouldEqual, ErrInvalidScalar)
		_, _, err = Sign(mustHex(curveOrder), []byte{0x01})
		So(errors.Cause(err), ShouldEqual, ErrInvalidScalar)
	})
}

func TestScalarMult(t *testing.T) {
	Convey("2*G equals 1*(2G)", t, func() {
		twoG, err := ScalarMult(scalar(2), mustHex(generatorCompressed))
		So(err, ShouldBeNil)
		So(hex.EncodeToString(twoG), ShouldEqual,
			"04c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"+
				"1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a")
		same, err := ScalarMult(scalar(1), twoG)
		So(err, ShouldBeNil)
		So(same, ShouldResemble, twoG)
	})
	Convey("diffie-hellman agreement", t, func() {
		a := bytes.Repeat([]byte{0x01}, 32)
		b := bytes.Repeat([]byte{0x02}, 32)
		ab, err := ScalarMult(a, DerivePublicKey(b, true))
		So(err, ShouldBeNil)
		ba, err := ScalarMult(b, DerivePublicKey(a, false))
		So(err, ShouldBeNil)
		So(ab, ShouldResemble, ba)
	})
	Convey("bad inputs are refused", t, func() {
		_, err := ScalarMult(make([]byte, 32), mustHex(generatorCompressed))
		So(errors.Cause(err), ShouldEqual, ErrInvalidScalar)

		notOnCurve := mustHex(generatorUncompressed)
		notOnCurve[64] ^= 0x01
		_, err = ScalarMult(scalar(1), notOnCurve)
		So(errors.Cause(err), ShouldEqual, ErrInvalidPoint)

		_, err = ScalarMult(scalar(1), append([]byte{0x05}, make([]byte, 32)...))
		So(errors.Cause(err), ShouldEqual, ErrInvalidPoint)

		hybrid := mustHex(generatorUncompressed)
		hybrid[0] = 0x06
		_, err = ScalarMult(scalar(1), hybrid)
		So(errors.Cause(err), ShouldEqual, ErrInvalidPoint)
	})
}

func TestMarshalPoint(t *testing.T) {
	Convey("nil coordinates encode as zero", t, func() {
		So(MarshalPoint(nil, nil, true), ShouldResemble, append([]byte{0x02}, make([]byte, 32)...))
		So(MarshalPoint(nil, nil, false), ShouldResemble, append([]byte{0x04}, make([]byte, 64)...))
	})
	Convey("odd y selects the 0x03 prefix", t, func() {
		So(MarshalPoint(big.NewInt(5), big.NewInt(7), true)[0], ShouldEqual, 0x03)
	})
}

func BenchmarkSign(b *testing.B) {
	k := bytes.Repeat([]byte{0x01}, 32)
	digest := bytes.Repeat([]byte{0xab}, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = Sign(k, digest)
	}
}
