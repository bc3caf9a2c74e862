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
	"fmt"

	"github.com/mitchellh/hashstructure"
)

// TableRef identifies the base table an access operator reads. The alias is
// part of structural identity: scans of the same table under different
// aliases are different plan nodes.
type TableRef struct {
	Database string
	Table    string
	Alias    string
}

// Hash returns the structural hash of the table reference.
func (t TableRef) Hash() uint64 {
	h, err := hashstructure.Hash(t, nil)
	if err != nil {
		panic(fmt.Sprintf("unable to hash table ref: %s", err))
	}
	return h
}

func (t TableRef) String() string {
	name := t.Table
	if t.Database != "" {
		name = t.Database + "." + name
	}
	if t.Alias != "" {
		name += " as " + t.Alias
	}
	return name
}

// SortKey is one column of an OrderBy operator's sort order.
type SortKey struct {
	Column     string
	Descending bool
}

func hashSortKeys(keys []SortKey) uint64 {
	h, err := hashstructure.Hash(keys, nil)
	if err != nil {
		panic(fmt.Sprintf("unable to hash sort keys: %s", err))
	}
	return h
}
