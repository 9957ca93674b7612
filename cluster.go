/*
 * cluster.go, part of goMap
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
	"fmt"
)

// ClusterTable contains the distinct states observed in a table for a given mapping.
// Each state is annotated with its records, i.e. the number of samples of the
// original table that collapse onto it.
// A nil Records slice stands for a table without a records column.
type ClusterTable struct {
	Mapping Mapping     //columns of the source table that define the states.
	Names   []string    //names of those columns
	States  [][]float64 //distinct value tuples, in order of first appearance.
	Records []int
}

// Len returns the number of states in the table.
func (C *ClusterTable) Len() int {
	return len(C.States)
}

// Total returns the sum of the records of the table.
func (C *ClusterTable) Total() int {
	t := 0
	for _, v := range C.Records {
		t += v
	}
	return t
}

// Frequencies returns the records of each state divided by nobs.
func (C *ClusterTable) Frequencies(nobs int) []float64 {
	ret := make([]float64, len(C.Records))
	for i, v := range C.Records {
		ret[i] = float64(v) / float64(nobs)
	}
	return ret
}

// Cluster groups the rows of T that have the same values for the columns in m.
// It returns one state per distinct tuple of values, in the order in which
// they first appear in T, together with the number of rows that share it.
func Cluster(T *Table, m Mapping) (*ClusterTable, error) {
	if err := m.Check(T.Cols()); err != nil {
		return nil, errDecorate(err, "Cluster")
	}
	C := &ClusterTable{
		Mapping: append(Mapping(nil), m...),
		Names:   T.Labels(m),
		States:  make([][]float64, 0),
		Records: make([]int, 0),
	}
	index := make(map[string]int)
	buf := make([]float64, len(m))
	for i := 0; i < T.Rows(); i++ {
		buf = T.Project(i, m, buf)
		k := stateKey(buf)
		if j, ok := index[k]; ok {
			C.Records[j]++
			continue
		}
		index[k] = len(C.States)
		C.States = append(C.States, append([]float64(nil), buf...))
		C.Records = append(C.Records, 1)
	}
	if t := C.Total(); t != T.Rows() {
		//This can only happen with a bug in this function.
		panic(fmt.Sprintf("goMap/Cluster: %d records for %d rows", t, T.Rows()))
	}
	return C, nil
}

// ValidateClusters returns a *DuplicateStateError if two states
// in the table are equal, ignoring their records.
func ValidateClusters(C *ClusterTable) error {
	seen := make(map[string]int, len(C.States))
	for i, s := range C.States {
		k := stateKey(s)
		if j, ok := seen[k]; ok {
			return &DuplicateStateError{First: j, Second: i, State: append([]float64(nil), s...), deco: deco{d: []string{"ValidateClusters"}}}
		}
		seen[k] = i
	}
	return nil
}
