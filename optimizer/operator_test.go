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
	"testing"

	"github.com/stretchr/testify/require"
)

var ordersTable = TableRef{Database: "db", Table: "orders"}
var customersTable = TableRef{Database: "db", Table: "customers"}

func allOperators() []Operator {
	return []Operator{
		NewOperator(NewLogicalGet(ordersTable, []string{"o_id > 10"}, false)),
		NewOperator(NewLogicalFilter([]string{"o_total > 100"})),
		NewOperator(NewLogicalInnerJoin([]string{"o_cust = c_id"})),
		NewOperator(NewLogicalAggregate([]string{"o_cust"}, "count(*) > 1")),
		NewOperator(NewLogicalLimit(0, 10)),
		NewOperator(NewSeqScan(ordersTable, []string{"o_id > 10"}, false)),
		NewOperator(NewIndexScan(ordersTable, "orders_pk", []string{"o_id = 1"})),
		NewOperator(NewInnerHashJoin([]string{"o_cust"}, []string{"c_id"})),
		NewOperator(NewInnerNLJoin([]string{"o_cust = c_id"})),
		NewOperator(NewOrderBy([]SortKey{{Column: "o_date", Descending: true}})),
		NewOperator(NewLimit(5, 100)),
	}
}

func TestUndefinedOperator(t *testing.T) {
	require := require.New(t)

	var op Operator
	require.False(op.IsDefined())

	copied := op.Copy()
	require.False(copied.IsDefined())

	require.True(op.Equals(copied))
	require.False(op.Equals(NewOperator(NewLimit(0, 1))))
	require.False(NewOperator(NewLimit(0, 1)).Equals(op))
}

func TestUndefinedOperatorPanics(t *testing.T) {
	require := require.New(t)

	var op Operator
	require.Panics(func() { op.Name() })
	require.Panics(func() { op.Type() })
	require.Panics(func() { op.Hash() })
	require.Panics(func() { op.IsLogical() })
	require.Panics(func() { op.IsPhysical() })
	require.Panics(func() { op.Accept(new(recordingVisitor)) })

	defer func() {
		err, ok := recover().(error)
		require.True(ok)
		require.True(ErrUndefinedOperator.Is(err))
	}()
	op.Name()
}

func TestLogicalPhysicalMutualExclusion(t *testing.T) {
	require := require.New(t)

	for _, op := range allOperators() {
		require.NotEqual(op.IsLogical(), op.IsPhysical(), "operator %s", op.Name())
		require.Equal(op.Type().IsLogical(), op.IsLogical())
		require.Equal(op.Type().IsPhysical(), op.IsPhysical())
	}
}

func TestEqualityIsEquivalenceRelation(t *testing.T) {
	require := require.New(t)

	ops := allOperators()
	for _, op := range ops {
		require.True(op.Equals(op), "operator %s not reflexive", op.Name())
	}

	a := NewOperator(NewSeqScan(ordersTable, []string{"o_id > 10"}, false))
	b := NewOperator(NewSeqScan(ordersTable, []string{"o_id > 10"}, false))
	c := a.Copy()

	require.True(a.Equals(b))
	require.True(b.Equals(a))
	require.True(b.Equals(c))
	require.True(a.Equals(c))

	for i, l := range ops {
		for j, r := range ops {
			require.Equal(i == j, l.Equals(r))
			require.Equal(l.Equals(r), r.Equals(l))
		}
	}
}

func TestHashEqualityConsistency(t *testing.T) {
	require := require.New(t)

	ops := allOperators()
	for i, l := range ops {
		for j, r := range ops {
			if l.Equals(r) {
				require.Equal(l.Hash(), r.Hash())
			}
			if i != j {
				require.NotEqual(l.Hash(), r.Hash())
			}
		}
	}
}

func TestCopyIndependence(t *testing.T) {
	require := require.New(t)

	orig := NewOperator(NewSeqScan(ordersTable, []string{"o_id > 10"}, false))
	copied := orig.Copy()
	require.True(orig.Equals(copied))
	require.Equal(orig.Hash(), copied.Hash())

	// Mutating the original's payload must not be observable through the
	// copy.
	scan, ok := As[*SeqScan](orig)
	require.True(ok)
	scan.Predicates[0] = "o_id > 999"

	copiedScan, ok := As[*SeqScan](copied)
	require.True(ok)
	require.Equal("o_id > 10", copiedScan.Predicates[0])
	require.False(orig.Equals(copied))
}

func TestDowncast(t *testing.T) {
	require := require.New(t)

	op := NewOperator(NewSeqScan(ordersTable, []string{"o_id > 10"}, true))

	scan, ok := As[*SeqScan](op)
	require.True(ok)
	require.Equal(ordersTable, scan.Table)
	require.Equal([]string{"o_id > 10"}, scan.Predicates)
	require.True(scan.IsForUpdate)

	_, ok = As[*IndexScan](op)
	require.False(ok)
	_, ok = As[*InnerHashJoin](op)
	require.False(ok)

	var undefined Operator
	_, ok = As[*SeqScan](undefined)
	require.False(ok)
}

func TestOperatorAccessors(t *testing.T) {
	require := require.New(t)

	op := NewOperator(NewInnerHashJoin([]string{"o_cust"}, []string{"c_id"}))
	require.True(op.IsDefined())
	require.Equal("InnerHashJoin", op.Name())
	require.Equal(InnerHashJoinType, op.Type())
	require.True(op.IsPhysical())
	require.False(op.IsLogical())
}

// The memo table deduplicates structurally equal operators by hash bucket
// and confirms with Equals. This exercises that consumption pattern
// end to end.
func TestMemoStyleDeduplication(t *testing.T) {
	require := require.New(t)

	buckets := make(map[uint64][]Operator)
	insert := func(op Operator) bool {
		h := op.Hash()
		for _, seen := range buckets[h] {
			if seen.Equals(op) {
				return false
			}
		}
		buckets[h] = append(buckets[h], op)
		return true
	}

	require.True(insert(NewOperator(NewSeqScan(ordersTable, nil, false))))
	require.False(insert(NewOperator(NewSeqScan(ordersTable, nil, false))))
	require.True(insert(NewOperator(NewSeqScan(customersTable, nil, false))))
	require.True(insert(NewOperator(NewLogicalGet(ordersTable, nil, false))))
	require.False(insert(NewOperator(NewLogicalGet(ordersTable, nil, false))))
}
