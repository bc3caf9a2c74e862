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

import "github.com/parapluirevel/terrier/internal/hash"

// OperatorNodeContents is the contract every concrete operator kind must
// satisfy. Consumers never hold contents directly; they hold an Operator,
// which forwards to the contents it owns.
//
// Hash and Equals must agree: contents that compare equal must hash equal.
// The memo table deduplicates by hash bucket and confirms with Equals, so a
// violation silently merges or splits plan nodes. There is deliberately no
// default for either method here; a kind that carries payload but compares
// by tag alone would produce false-positive deduplication, so every kind
// spells out both.
type OperatorNodeContents interface {
	// Copy returns an independent deep copy of the contents. The result
	// never aliases mutable state with the receiver.
	Copy() OperatorNodeContents

	// Accept calls the visitor method matching the concrete kind of the
	// receiver. The visitor must not mutate the receiver.
	Accept(v OperatorVisitor)

	// Name returns the display name of the operator.
	Name() string

	// Type returns the operator's kind tag.
	Type() OpType

	// IsLogical returns whether the operator is logical. Exactly one of
	// IsLogical and IsPhysical is true for any kind.
	IsLogical() bool

	// IsPhysical returns whether the operator is physical.
	IsPhysical() bool

	// Hash returns the structural hash of the operator, covering the kind
	// tag and all payload that participates in Equals.
	Hash() uint64

	// Equals reports whether the receiver is structurally equal to other.
	// Equality is structural, not identity: two separately constructed
	// contents with the same kind and payload are equal.
	Equals(other OperatorNodeContents) bool
}

// BaseOperatorNodeContents carries the two facts fixed per concrete kind,
// its display name and kind tag, and derives the logical/physical
// classification from the tag. Concrete kinds embed it and add Copy,
// Accept, Hash and Equals themselves; only the kind knows how to clone,
// dispatch and fingerprint its own payload.
type BaseOperatorNodeContents struct {
	name   string
	opType OpType
}

// NewBaseOperatorNodeContents returns the embeddable base for a concrete
// operator kind with the given fixed name and kind tag.
func NewBaseOperatorNodeContents(name string, t OpType) BaseOperatorNodeContents {
	return BaseOperatorNodeContents{name: name, opType: t}
}

// Name implements the OperatorNodeContents interface.
func (b BaseOperatorNodeContents) Name() string {
	return b.name
}

// Type implements the OperatorNodeContents interface.
func (b BaseOperatorNodeContents) Type() OpType {
	return b.opType
}

// IsLogical implements the OperatorNodeContents interface.
func (b BaseOperatorNodeContents) IsLogical() bool {
	return b.opType.IsLogical()
}

// IsPhysical implements the OperatorNodeContents interface.
func (b BaseOperatorNodeContents) IsPhysical() bool {
	return b.opType.IsPhysical()
}

// typeHash returns the hash of the kind tag alone, the seed every concrete
// kind folds its payload into.
func (b BaseOperatorNodeContents) typeHash() uint64 {
	return hash.Uint64(uint64(b.opType))
}
