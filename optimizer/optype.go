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

import "fmt"

// OpType identifies the concrete kind of an operator node. Each concrete
// operator kind is assigned exactly one tag at compile time, and the tag of
// an operator never changes after construction. Logical kinds are declared
// below logicalPhysicalDelimiter and physical kinds above it, so the tag
// alone determines the logical/physical classification.
type OpType uint16

const (
	// Undefined is the tag of the zero Operator, which owns no contents.
	Undefined OpType = iota

	// Logical operators.
	LogicalGetType
	LogicalFilterType
	LogicalInnerJoinType
	LogicalAggregateType
	LogicalLimitType

	logicalPhysicalDelimiter

	// Physical operators.
	SeqScanType
	IndexScanType
	InnerHashJoinType
	InnerNLJoinType
	OrderByType
	LimitType
)

// IsLogical returns whether the tag names a logical operator kind.
func (t OpType) IsLogical() bool {
	return t > Undefined && t < logicalPhysicalDelimiter
}

// IsPhysical returns whether the tag names a physical operator kind.
func (t OpType) IsPhysical() bool {
	return t > logicalPhysicalDelimiter
}

func (t OpType) String() string {
	switch t {
	case Undefined:
		return "Undefined"
	case LogicalGetType:
		return "LogicalGet"
	case LogicalFilterType:
		return "LogicalFilter"
	case LogicalInnerJoinType:
		return "LogicalInnerJoin"
	case LogicalAggregateType:
		return "LogicalAggregate"
	case LogicalLimitType:
		return "LogicalLimit"
	case SeqScanType:
		return "SeqScan"
	case IndexScanType:
		return "IndexScan"
	case InnerHashJoinType:
		return "InnerHashJoin"
	case InnerNLJoinType:
		return "InnerNLJoin"
	case OrderByType:
		return "OrderBy"
	case LimitType:
		return "Limit"
	default:
		return fmt.Sprintf("OpType(%d)", uint16(t))
	}
}
