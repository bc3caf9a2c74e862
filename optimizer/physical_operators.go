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
	"slices"

	"github.com/parapluirevel/terrier/internal/hash"
)

// SeqScan reads a base table sequentially, applying pushed-down predicates
// to each row.
type SeqScan struct {
	BaseOperatorNodeContents
	Table       TableRef
	Predicates  []string
	IsForUpdate bool
}

// NewSeqScan creates a new SeqScan operator.
func NewSeqScan(table TableRef, predicates []string, isForUpdate bool) *SeqScan {
	return &SeqScan{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("SeqScan", SeqScanType),
		Table:                    table,
		Predicates:               predicates,
		IsForUpdate:              isForUpdate,
	}
}

// Copy implements the OperatorNodeContents interface.
func (s *SeqScan) Copy() OperatorNodeContents {
	c := *s
	c.Predicates = slices.Clone(s.Predicates)
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (s *SeqScan) Accept(v OperatorVisitor) {
	v.VisitSeqScan(s)
}

// Hash implements the OperatorNodeContents interface.
func (s *SeqScan) Hash() uint64 {
	h := s.typeHash()
	h = hash.Combine(h, s.Table.Hash())
	h = hash.Combine(h, hash.Strings(s.Predicates))
	h = hash.Combine(h, hash.Bool(s.IsForUpdate))
	return h
}

// Equals implements the OperatorNodeContents interface.
func (s *SeqScan) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*SeqScan)
	if !ok {
		return false
	}
	return s.Table == o.Table &&
		s.IsForUpdate == o.IsForUpdate &&
		slices.Equal(s.Predicates, o.Predicates)
}

// IndexScan reads a base table through one of its indexes.
type IndexScan struct {
	BaseOperatorNodeContents
	Table      TableRef
	Index      string
	Predicates []string
}

// NewIndexScan creates a new IndexScan operator.
func NewIndexScan(table TableRef, index string, predicates []string) *IndexScan {
	return &IndexScan{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("IndexScan", IndexScanType),
		Table:                    table,
		Index:                    index,
		Predicates:               predicates,
	}
}

// Copy implements the OperatorNodeContents interface.
func (s *IndexScan) Copy() OperatorNodeContents {
	c := *s
	c.Predicates = slices.Clone(s.Predicates)
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (s *IndexScan) Accept(v OperatorVisitor) {
	v.VisitIndexScan(s)
}

// Hash implements the OperatorNodeContents interface.
func (s *IndexScan) Hash() uint64 {
	h := s.typeHash()
	h = hash.Combine(h, s.Table.Hash())
	h = hash.Combine(h, hash.String(s.Index))
	h = hash.Combine(h, hash.Strings(s.Predicates))
	return h
}

// Equals implements the OperatorNodeContents interface.
func (s *IndexScan) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*IndexScan)
	if !ok {
		return false
	}
	return s.Table == o.Table &&
		s.Index == o.Index &&
		slices.Equal(s.Predicates, o.Predicates)
}

// InnerHashJoin joins two inputs by building a hash table on the left keys
// and probing it with the right keys. Key order is positional, so the key
// lists are part of structural identity in order.
type InnerHashJoin struct {
	BaseOperatorNodeContents
	LeftKeys  []string
	RightKeys []string
}

// NewInnerHashJoin creates a new InnerHashJoin operator.
func NewInnerHashJoin(leftKeys, rightKeys []string) *InnerHashJoin {
	return &InnerHashJoin{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("InnerHashJoin", InnerHashJoinType),
		LeftKeys:                 leftKeys,
		RightKeys:                rightKeys,
	}
}

// Copy implements the OperatorNodeContents interface.
func (j *InnerHashJoin) Copy() OperatorNodeContents {
	c := *j
	c.LeftKeys = slices.Clone(j.LeftKeys)
	c.RightKeys = slices.Clone(j.RightKeys)
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (j *InnerHashJoin) Accept(v OperatorVisitor) {
	v.VisitInnerHashJoin(j)
}

// Hash implements the OperatorNodeContents interface.
func (j *InnerHashJoin) Hash() uint64 {
	h := hash.Combine(j.typeHash(), hash.Strings(j.LeftKeys))
	return hash.Combine(h, hash.Strings(j.RightKeys))
}

// Equals implements the OperatorNodeContents interface.
func (j *InnerHashJoin) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*InnerHashJoin)
	if !ok {
		return false
	}
	return slices.Equal(j.LeftKeys, o.LeftKeys) &&
		slices.Equal(j.RightKeys, o.RightKeys)
}

// InnerNLJoin joins two inputs with a nested loop over the join predicates.
type InnerNLJoin struct {
	BaseOperatorNodeContents
	JoinPredicates []string
}

// NewInnerNLJoin creates a new InnerNLJoin operator.
func NewInnerNLJoin(joinPredicates []string) *InnerNLJoin {
	return &InnerNLJoin{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("InnerNLJoin", InnerNLJoinType),
		JoinPredicates:           joinPredicates,
	}
}

// Copy implements the OperatorNodeContents interface.
func (j *InnerNLJoin) Copy() OperatorNodeContents {
	c := *j
	c.JoinPredicates = slices.Clone(j.JoinPredicates)
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (j *InnerNLJoin) Accept(v OperatorVisitor) {
	v.VisitInnerNLJoin(j)
}

// Hash implements the OperatorNodeContents interface.
func (j *InnerNLJoin) Hash() uint64 {
	return hash.Combine(j.typeHash(), hash.Strings(j.JoinPredicates))
}

// Equals implements the OperatorNodeContents interface.
func (j *InnerNLJoin) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*InnerNLJoin)
	if !ok {
		return false
	}
	return slices.Equal(j.JoinPredicates, o.JoinPredicates)
}

// OrderBy sorts its input by the given sort keys.
type OrderBy struct {
	BaseOperatorNodeContents
	SortKeys []SortKey
}

// NewOrderBy creates a new OrderBy operator.
func NewOrderBy(sortKeys []SortKey) *OrderBy {
	return &OrderBy{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("OrderBy", OrderByType),
		SortKeys:                 sortKeys,
	}
}

// Copy implements the OperatorNodeContents interface.
func (s *OrderBy) Copy() OperatorNodeContents {
	c := *s
	c.SortKeys = slices.Clone(s.SortKeys)
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (s *OrderBy) Accept(v OperatorVisitor) {
	v.VisitOrderBy(s)
}

// Hash implements the OperatorNodeContents interface.
func (s *OrderBy) Hash() uint64 {
	return hash.Combine(s.typeHash(), hashSortKeys(s.SortKeys))
}

// Equals implements the OperatorNodeContents interface.
func (s *OrderBy) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*OrderBy)
	if !ok {
		return false
	}
	return slices.Equal(s.SortKeys, o.SortKeys)
}

// Limit restricts its input to Limit rows starting at Offset.
type Limit struct {
	BaseOperatorNodeContents
	Offset int64
	Limit  int64
}

// NewLimit creates a new Limit operator.
func NewLimit(offset, limit int64) *Limit {
	return &Limit{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("Limit", LimitType),
		Offset:                   offset,
		Limit:                    limit,
	}
}

// Copy implements the OperatorNodeContents interface.
func (l *Limit) Copy() OperatorNodeContents {
	c := *l
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (l *Limit) Accept(v OperatorVisitor) {
	v.VisitLimit(l)
}

// Hash implements the OperatorNodeContents interface.
func (l *Limit) Hash() uint64 {
	h := hash.Combine(l.typeHash(), hash.Uint64(uint64(l.Offset)))
	return hash.Combine(h, hash.Uint64(uint64(l.Limit)))
}

// Equals implements the OperatorNodeContents interface.
func (l *Limit) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*Limit)
	if !ok {
		return false
	}
	return l.Offset == o.Offset && l.Limit == o.Limit
}
