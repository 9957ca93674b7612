/*
 * candidates.go, part of goMap
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

//Package candidates enumerates the coarse-grained mappings to be evaluated.
package candidates

import (
	"fmt"

	mapent "github.com/rmera/gomap"
	"gonum.org/v1/gonum/stat/combin"
)

// Candidate is a mapping together with the names of the columns it keeps.
type Candidate struct {
	Mapping mapent.Mapping
	Labels  []string
}

// Count returns the number of mappings Enumerate would produce for ncols
// columns and maxBinom.
func Count(ncols, maxBinom int) int {
	if maxBinom > ncols {
		maxBinom = ncols
	}
	n := 0
	for k := 1; k <= maxBinom; k++ {
		n += combin.Binomial(ncols, k)
	}
	return n
}

// Enumerate returns every mapping that keeps between 1 and maxBinom of the
// columns named in names (all of them, if maxBinom is larger than their number).
// Mappings are ordered by size, and lexicographically within each size.
func Enumerate(names []string, maxBinom int) ([]Candidate, error) {
	n := len(names)
	if n == 0 {
		return nil, fmt.Errorf("goMap/candidates: no columns to enumerate")
	}
	if maxBinom < 1 {
		return nil, fmt.Errorf("goMap/candidates: max_binom must be at least 1, got %d", maxBinom)
	}
	if maxBinom > n {
		maxBinom = n
	}
	ret := make([]Candidate, 0, Count(n, maxBinom))
	for k := 1; k <= maxBinom; k++ {
		gen := combin.NewCombinationGenerator(n, k)
		for gen.Next() {
			m := mapent.Mapping(gen.Combination(nil))
			labels := make([]string, 0, k)
			for _, v := range m {
				labels = append(labels, names[v])
			}
			ret = append(ret, Candidate{Mapping: m, Labels: labels})
		}
	}
	return ret, nil
}

// FromIndexes builds candidates from explicit lists of column indexes, checking them
// against names.
func FromIndexes(names []string, maps [][]int) ([]Candidate, error) {
	ret := make([]Candidate, 0, len(maps))
	for _, v := range maps {
		m := mapent.Mapping(v)
		if err := m.Check(len(names)); err != nil {
			return nil, err
		}
		labels := make([]string, 0, len(m))
		for _, j := range m {
			labels = append(labels, names[j])
		}
		ret = append(ret, Candidate{Mapping: append(mapent.Mapping(nil), m...), Labels: labels})
	}
	return ret, nil
}
