/*
 * mapping.go, part of goMap
 *
 * Copyright 2026 The goMap authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mapent

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mapping is an ordered set of column indexes, which selects the coordinates
// that define a (coarser or finer) representation of a configuration.
type Mapping []int

// Check returns an error if the mapping is empty, has repeated indexes or
// refers to columns outside [0,ncols).
func (m Mapping) Check(ncols int) error {
	if len(m) == 0 {
		return &MappingError{Mapping: m, Message: "empty mapping"}
	}
	seen := make(map[int]bool, len(m))
	for _, v := range m {
		if v < 0 || v >= ncols {
			return &MappingError{Mapping: m, Message: fmt.Sprintf("index %d out of range for %d columns", v, ncols)}
		}
		if seen[v] {
			return &MappingError{Mapping: m, Message: fmt.Sprintf("index %d repeated", v)}
		}
		seen[v] = true
	}
	return nil
}

// Index returns the position of the column col in the mapping, or -1
// if it's not present.
func (m Mapping) Index(col int) int {
	for i, v := range m {
		if v == col {
			return i
		}
	}
	return -1
}

// SubsetOf returns true if every column in m is also in other.
func (m Mapping) SubsetOf(other Mapping) bool {
	for _, v := range m {
		if other.Index(v) < 0 {
			return false
		}
	}
	return true
}

// String returns the mapping with the same format numpy uses for
// integer arrays, i.e. [0 1 5]
func (m Mapping) String() string {
	s := make([]string, 0, len(m))
	for _, v := range m {
		s = append(s, strconv.Itoa(v))
	}
	return "[" + strings.Join(s, " ") + "]"
}

//stateKey returns a string that is equal for two tuples only if all their values are equal.
//-0 and 0 give the same key.
func stateKey(state []float64) string {
	b := make([]byte, 0, 8*len(state))
	for _, v := range state {
		if v == 0 {
			v = 0
		}
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
	}
	return string(b)
}
