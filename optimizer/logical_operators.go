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

// LogicalGet represents a logical read of a base table, optionally filtered
// by predicates pushed down onto the scan.
type LogicalGet struct {
	BaseOperatorNodeContents
	Table       TableRef
	Predicates  []string
	IsForUpdate bool
}

// NewLogicalGet creates a new LogicalGet operator.
func NewLogicalGet(table TableRef, predicates []string, isForUpdate bool) *LogicalGet {
	return &LogicalGet{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("LogicalGet", LogicalGetType),
		Table:                    table,
		Predicates:               predicates,
		IsForUpdate:              isForUpdate,
	}
}

// Copy implements the OperatorNodeContents interface.
func (g *LogicalGet) Copy() OperatorNodeContents {
	c := *g
	c.Predicates = slices.Clone(g.Predicates)
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (g *LogicalGet) Accept(v OperatorVisitor) {
	v.VisitLogicalGet(g)
}

// Hash implements the OperatorNodeContents interface.
func (g *LogicalGet) Hash() uint64 {
	h := g.typeHash()
	h = hash.Combine(h, g.Table.Hash())
	h = hash.Combine(h, hash.Strings(g.Predicates))
	h = hash.Combine(h, hash.Bool(g.IsForUpdate))
	return h
}

// Equals implements the OperatorNodeContents interface.
func (g *LogicalGet) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*LogicalGet)
	if !ok {
		return false
	}
	return g.Table == o.Table &&
		g.IsForUpdate == o.IsForUpdate &&
		slices.Equal(g.Predicates, o.Predicates)
}

// LogicalFilter filters its input by a conjunction of predicates.
type LogicalFilter struct {
	BaseOperatorNodeContents
	Predicates []string
}

// NewLogicalFilter creates a new LogicalFilter operator.
func NewLogicalFilter(predicates []string) *LogicalFilter {
	return &LogicalFilter{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("LogicalFilter", LogicalFilterType),
		Predicates:               predicates,
	}
}

// Copy implements the OperatorNodeContents interface.
func (f *LogicalFilter) Copy() OperatorNodeContents {
	c := *f
	c.Predicates = slices.Clone(f.Predicates)
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (f *LogicalFilter) Accept(v OperatorVisitor) {
	v.VisitLogicalFilter(f)
}

// Hash implements the OperatorNodeContents interface.
func (f *LogicalFilter) Hash() uint64 {
	return hash.Combine(f.typeHash(), hash.Strings(f.Predicates))
}

// Equals implements the OperatorNodeContents interface.
func (f *LogicalFilter) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*LogicalFilter)
	if !ok {
		return false
	}
	return slices.Equal(f.Predicates, o.Predicates)
}

// LogicalInnerJoin joins two inputs on a conjunction of join predicates.
type LogicalInnerJoin struct {
	BaseOperatorNodeContents
	JoinPredicates []string
}

// NewLogicalInnerJoin creates a new LogicalInnerJoin operator.
func NewLogicalInnerJoin(joinPredicates []string) *LogicalInnerJoin {
	return &LogicalInnerJoin{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("LogicalInnerJoin", LogicalInnerJoinType),
		JoinPredicates:           joinPredicates,
	}
}

// Copy implements the OperatorNodeContents interface.
func (j *LogicalInnerJoin) Copy() OperatorNodeContents {
	c := *j
	c.JoinPredicates = slices.Clone(j.JoinPredicates)
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (j *LogicalInnerJoin) Accept(v OperatorVisitor) {
	v.VisitLogicalInnerJoin(j)
}

// Hash implements the OperatorNodeContents interface.
func (j *LogicalInnerJoin) Hash() uint64 {
	return hash.Combine(j.typeHash(), hash.Strings(j.JoinPredicates))
}

// Equals implements the OperatorNodeContents interface.
func (j *LogicalInnerJoin) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*LogicalInnerJoin)
	if !ok {
		return false
	}
	return slices.Equal(j.JoinPredicates, o.JoinPredicates)
}

// LogicalAggregate groups its input by the given columns and filters groups
// by an optional having predicate.
type LogicalAggregate struct {
	BaseOperatorNodeContents
	GroupByColumns []string
	Having         string
}

// NewLogicalAggregate creates a new LogicalAggregate operator.
func NewLogicalAggregate(groupByColumns []string, having string) *LogicalAggregate {
	return &LogicalAggregate{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("LogicalAggregate", LogicalAggregateType),
		GroupByColumns:           groupByColumns,
		Having:                   having,
	}
}

// Copy implements the OperatorNodeContents interface.
func (a *LogicalAggregate) Copy() OperatorNodeContents {
	c := *a
	c.GroupByColumns = slices.Clone(a.GroupByColumns)
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (a *LogicalAggregate) Accept(v OperatorVisitor) {
	v.VisitLogicalAggregate(a)
}

// Hash implements the OperatorNodeContents interface.
func (a *LogicalAggregate) Hash() uint64 {
	h := hash.Combine(a.typeHash(), hash.Strings(a.GroupByColumns))
	return hash.Combine(h, hash.String(a.Having))
}

// Equals implements the OperatorNodeContents interface.
func (a *LogicalAggregate) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*LogicalAggregate)
	if !ok {
		return false
	}
	return a.Having == o.Having &&
		slices.Equal(a.GroupByColumns, o.GroupByColumns)
}

// LogicalLimit restricts its input to limit rows starting at offset.
type LogicalLimit struct {
	BaseOperatorNodeContents
	Offset int64
	Limit  int64
}

// NewLogicalLimit creates a new LogicalLimit operator.
func NewLogicalLimit(offset, limit int64) *LogicalLimit {
	return &LogicalLimit{
		BaseOperatorNodeContents: NewBaseOperatorNodeContents("LogicalLimit", LogicalLimitType),
		Offset:                   offset,
		Limit:                    limit,
	}
}

// Copy implements the OperatorNodeContents interface.
func (l *LogicalLimit) Copy() OperatorNodeContents {
	c := *l
	return &c
}

// Accept implements the OperatorNodeContents interface.
func (l *LogicalLimit) Accept(v OperatorVisitor) {
	v.VisitLogicalLimit(l)
}

// Hash implements the OperatorNodeContents interface.
func (l *LogicalLimit) Hash() uint64 {
	h := hash.Combine(l.typeHash(), hash.Uint64(uint64(l.Offset)))
	return hash.Combine(h, hash.Uint64(uint64(l.Limit)))
}

// Equals implements the OperatorNodeContents interface.
func (l *LogicalLimit) Equals(other OperatorNodeContents) bool {
	o, ok := other.(*LogicalLimit)
	if !ok {
		return false
	}
	return l.Offset == o.Offset && l.Limit == o.Limit
}
