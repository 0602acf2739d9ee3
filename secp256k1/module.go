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
	"sort"

	"github.com/pkg/errors"
)

type moduleFunc struct {
	minArgs, maxArgs int
	call             func(b *Binding, args []interface{}) (interface{}, error)
}

var moduleFuncs = map[string]moduleFunc{
	OpPublicKey: {minArgs: 1, maxArgs: 2, call: callPublicKey},
	OpSign:      {minArgs: 2, maxArgs: 2, call: callSign},
	OpVerify:    {minArgs: 3, maxArgs: 3, call: callVerify},
	OpMultiply:  {minArgs: 2, maxArgs: 2, call: callMultiply},
}

// Module is the name based call table handed to an embedding interpreter.
// Buffer arguments may be []byte or string.
type Module struct {
	b *Binding
}

// NewModule returns the call table of b, the default binding when b is nil.
func NewModule(b *Binding) *Module {
	if b == nil {
		b = defaultBinding
	}
	return &Module{b: b}
}

// Names returns the callable names in sorted order.
func (m *Module) Names() []string {
	names := make([]string, 0, len(moduleFuncs))
	for name := range moduleFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes name with args. publickey, sign and multiply return []byte, verify returns bool.
// Binding errors are returned unchanged.
func (m *Module) Call(name string, args ...interface{}) (interface{}, error) {
	f, ok := moduleFuncs[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFunction, "%q", name)
	}
	if len(args) < f.minArgs || len(args) > f.maxArgs {
		if f.minArgs == f.maxArgs {
			return nil, errors.Wrapf(ErrArgCount, "%s takes %d arguments (%d given)",
				name, f.minArgs, len(args))
		}
		return nil, errors.Wrapf(ErrArgCount, "%s takes %d to %d arguments (%d given)",
			name, f.minArgs, f.maxArgs, len(args))
	}
	return f.call(m.b, args)
}

func bufferArg(args []interface{}, i int) ([]byte, error) {
	switch v := args[i].(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.Wrapf(ErrArgType, "argument %d: expected buffer, got %T", i+1, args[i])
	}
}

func bufferArgs(args []interface{}) ([][]byte, error) {
	bufs := make([][]byte, len(args))
	for i := range args {
		buf, err := bufferArg(args, i)
		if err != nil {
			return nil, err
		}
		bufs[i] = buf
	}
	return bufs, nil
}

func callPublicKey(b *Binding, args []interface{}) (interface{}, error) {
	sk, err := bufferArg(args, 0)
	if err != nil {
		return nil, err
	}
	compressed := true
	if len(args) == 2 {
		c, ok := args[1].(bool)
		if !ok {
			return nil, errors.Wrapf(ErrArgType, "argument 2: expected bool, got %T", args[1])
		}
		compressed = c
	}
	pub, err := b.PublicKey(sk, compressed)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

func callSign(b *Binding, args []interface{}) (interface{}, error) {
	bufs, err := bufferArgs(args)
	if err != nil {
		return nil, err
	}
	sig, err := b.Sign(bufs[0], bufs[1])
	if err != nil {
		return nil, err
	}
	return sig, nil
}

func callVerify(b *Binding, args []interface{}) (interface{}, error) {
	bufs, err := bufferArgs(args)
	if err != nil {
		return nil, err
	}
	ok, err := b.Verify(bufs[0], bufs[1], bufs[2])
	if err != nil {
		return nil, err
	}
	return ok, nil
}

func callMultiply(b *Binding, args []interface{}) (interface{}, error) {
	bufs, err := bufferArgs(args)
	if err != nil {
		return nil, err
	}
	point, err := b.Multiply(bufs[0], bufs[1])
	if err != nil {
		return nil, err
	}
	return point, nil
}
