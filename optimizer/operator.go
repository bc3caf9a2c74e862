// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package optimizer

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrUndefinedOperator is thrown when an operation requiring defined
// contents is invoked on an undefined Operator.
var ErrUndefinedOperator = errors.NewKind("optimizer: %s called on an undefined operator")

// Operator is the uniform handle every consumer of the plan tree stores and
// passes by value, regardless of which concrete operator kind it wraps. An
// Operator owns exactly one OperatorNodeContents; two Operators never share
// ownership of the same contents, because Copy always deep clones. Payload
// is treated as immutable once an operator is constructed, so a built
// Operator is safe for concurrent readers.
//
// The zero Operator is undefined: it owns no contents and answers only
// IsDefined, Copy and Equals. Every other method on an undefined Operator
// is a programmer error and panics, since letting the misuse through would
// corrupt plan-tree invariants downstream.
type Operator struct {
	contents OperatorNodeContents
}

// NewOperator returns an Operator taking ownership of the given contents.
// The caller must not retain or mutate the contents afterwards.
func NewOperator(contents OperatorNodeContents) Operator {
	return Operator{contents: contents}
}

// IsDefined returns whether the operator owns contents.
func (o Operator) IsDefined() bool {
	return o.contents != nil
}

// Copy returns an Operator owning an independent deep copy of the contents.
// Copying an undefined Operator yields an undefined Operator.
func (o Operator) Copy() Operator {
	if o.contents == nil {
		return Operator{}
	}
	return Operator{contents: o.contents.Copy()}
}

// Accept calls the visitor method matching the concrete kind of the owned
// contents.
func (o Operator) Accept(v OperatorVisitor) {
	o.mustContents("Accept").Accept(v)
}

// Name returns the display name of the owned contents.
func (o Operator) Name() string {
	return o.mustContents("Name").Name()
}

// Type returns the kind tag of the owned contents.
func (o Operator) Type() OpType {
	return o.mustContents("Type").Type()
}

// Hash returns the structural hash of the owned contents.
func (o Operator) Hash() uint64 {
	return o.mustContents("Hash").Hash()
}

// IsLogical returns whether the owned contents is a logical operator.
func (o Operator) IsLogical() bool {
	return o.mustContents("IsLogical").IsLogical()
}

// IsPhysical returns whether the owned contents is a physical operator.
func (o Operator) IsPhysical() bool {
	return o.mustContents("IsPhysical").IsPhysical()
}

// Equals reports structural equality between two Operators. Two undefined
// Operators are equal; a defined and an undefined Operator never are. For
// defined Operators the kind tags are compared first, so a tag mismatch
// never reaches the payload comparison.
func (o Operator) Equals(other Operator) bool {
	if o.contents == nil || other.contents == nil {
		return o.contents == nil && other.contents == nil
	}
	if o.contents.Type() != other.contents.Type() {
		return false
	}
	return o.contents.Equals(other.contents)
}

func (o Operator) mustContents(operation string) OperatorNodeContents {
	if o.contents == nil {
		err := ErrUndefinedOperator.New(operation)
		logrus.WithField("operation", operation).Error(err.Error())
		panic(err)
	}
	return o.contents
}

// As returns the owned contents as the concrete operator kind T. The second
// result is false when the operator is undefined or its contents' exact
// dynamic type is not T; that is a normal outcome callers must check, not an
// error. The narrowing is a checked type assertion, never an unguarded
// conversion.
func As[T OperatorNodeContents](o Operator) (T, bool) {
	if o.contents != nil {
		if t, ok := o.contents.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
