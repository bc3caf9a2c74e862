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

// Package hash provides the 64-bit structural hashing primitives used to
// fingerprint operator nodes. Hashes are stable within a process run and
// across runs, which the memo table relies on for bucketing.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Bytes returns the hash of the given bytes.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// String returns the hash of the given string.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Uint64 returns the hash of the given integer.
func Uint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

// Bool returns the hash of the given boolean.
func Bool(b bool) uint64 {
	if b {
		return Uint64(1)
	}
	return Uint64(0)
}

// Combine folds two hashes into one. The combination is order sensitive, so
// Combine(l, r) and Combine(r, l) are different hashes in general.
func Combine(l, r uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], l)
	binary.LittleEndian.PutUint64(buf[8:], r)
	return xxhash.Sum64(buf[:])
}

// Strings folds a slice of strings into a single hash, preserving order and
// length so that ["ab"] and ["a", "b"] do not collide.
func Strings(ss []string) uint64 {
	h := Uint64(uint64(len(ss)))
	for _, s := range ss {
		h = Combine(h, String(s))
	}
	return h
}
