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
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/CovenantSQL/curvebind/engine"
)

func TestModule(t *testing.T) {
	m := NewModule(quietBinding(engine.Default()))
	sk := bytes.Repeat([]byte{0x01}, 32)

	Convey("names are the four operations", t, func() {
		So(m.Names(), ShouldResemble, []string{OpMultiply, OpPublicKey, OpSign, OpVerify})
		So(NewModule(nil).b, ShouldEqual, Default())
	})
	Convey("publickey defaults to compressed", t, func() {
		out, err := m.Call("publickey", sk)
		So(err, ShouldBeNil)
		So(hex.EncodeToString(out.([]byte)), ShouldEqual, pinnedCompressed)

		out, err = m.Call("publickey", sk, false)
		So(err, ShouldBeNil)
		So(hex.EncodeToString(out.([]byte)), ShouldEqual, pinnedUncompressed)

		out, err = m.Call("publickey", string(sk), true)
		So(err, ShouldBeNil)
		So(hex.EncodeToString(out.([]byte)), ShouldEqual, pinnedCompressed)
	})
	Convey("sign, verify and multiply dispatch", t, func() {
		pub, err := m.Call("publickey", sk)
		So(err, ShouldBeNil)
		sig, err := m.Call("sign", sk, "message")
		So(err, ShouldBeNil)
		So(sig, ShouldHaveLength, SignatureSize)

		ok, err := m.Call("verify", pub, sig, []byte("message"))
		So(err, ShouldBeNil)
		So(ok, ShouldEqual, true)

		ok, err = m.Call("verify", pub, sig, "other")
		So(err, ShouldBeNil)
		So(ok, ShouldEqual, false)

		point, err := m.Call("multiply", scalar(1), pub)
		So(err, ShouldBeNil)
		So(hex.EncodeToString(point.([]byte)), ShouldEqual, pinnedUncompressed)
	})
	Convey("arity is enforced", t, func() {
		for name, args := range map[string][]interface{}{
			"publickey": {},
			"sign":      {sk},
			"verify":    {sk, sk},
			"multiply":  {sk, sk, sk},
		} {
			out, err := m.Call(name, args...)
			So(out, ShouldBeNil)
			So(errors.Cause(err), ShouldEqual, ErrArgCount)
		}
		_, err := m.Call("publickey", sk, true, true)
		So(errors.Cause(err), ShouldEqual, ErrArgCount)
	})
	Convey("argument types are enforced", t, func() {
		_, err := m.Call("sign", sk, 42)
		So(errors.Cause(err), ShouldEqual, ErrArgType)
		_, err = m.Call("verify", nil, sk, sk)
		So(errors.Cause(err), ShouldEqual, ErrArgType)
		_, err = m.Call("publickey", sk, 1)
		So(errors.Cause(err), ShouldEqual, ErrArgType)
	})
	Convey("unknown names and binding errors", t, func() {
		_, err := m.Call("recover", sk)
		So(errors.Cause(err), ShouldEqual, ErrUnknownFunction)

		out, err := m.Call("sign", sk, "")
		So(out, ShouldBeNil)
		So(errors.Cause(err), ShouldEqual, ErrEmptyInput)

		out, err = m.Call("multiply", sk[:8], sk)
		So(out, ShouldBeNil)
		So(errors.Cause(err), ShouldEqual, ErrInvalidLength)

		out, err = m.Call("verify", sk, make([]byte, 65), "m")
		So(out, ShouldBeNil)
		So(errors.Cause(err), ShouldEqual, ErrInvalidLength)
	})
}
