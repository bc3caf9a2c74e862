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

// OperatorVisitor is implemented by consumers that dispatch on the concrete
// kind of an operator, such as rule matchers and plan printers. Operator
// and OperatorNodeContents guarantee that Accept always invokes the method
// matching the operator's true concrete kind, never another kind's, so
// implementations need no kind switch of their own. Visitors must not
// mutate the operator passed to a callback.
type OperatorVisitor interface {
	VisitLogicalGet(op *LogicalGet)
	VisitLogicalFilter(op *LogicalFilter)
	VisitLogicalInnerJoin(op *LogicalInnerJoin)
	VisitLogicalAggregate(op *LogicalAggregate)
	VisitLogicalLimit(op *LogicalLimit)
	VisitSeqScan(op *SeqScan)
	VisitIndexScan(op *IndexScan)
	VisitInnerHashJoin(op *InnerHashJoin)
	VisitInnerNLJoin(op *InnerNLJoin)
	VisitOrderBy(op *OrderBy)
	VisitLimit(op *Limit)
}
