/*
 * pbar.go, part of goMap
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

	"gonum.org/v1/gonum/stat"
)

// ProbTable contains, for each coarse-grained state, the number of fine-grained
// states that map onto it (Omega1) and the average of their probabilities (PBar).
type ProbTable struct {
	States [][]float64
	Omega1 []int
	PBar   []float64
	index  map[string]int
}

// NewProbTable builds a ProbTable from its columns. All three slices must have the same length.
func NewProbTable(states [][]float64, omega1 []int, pbar []float64) (*ProbTable, error) {
	if len(states) != len(omega1) || len(states) != len(pbar) {
		return nil, &ValidationError{Field: "p_bar", Message: fmt.Sprintf("NewProbTable: %d states, %d omega_1 and %d p_bar values", len(states), len(omega1), len(pbar))}
	}
	P := &ProbTable{States: states, Omega1: omega1, PBar: pbar, index: make(map[string]int, len(states))}
	for i, v := range states {
		P.index[stateKey(v)] = i
	}
	return P, nil
}

// Len returns the number of coarse-grained states in the table.
func (P *ProbTable) Len() int {
	return len(P.States)
}

// Lookup returns the p_bar for the coarse-grained state given, and whether the state is present.
func (P *ProbTable) Lookup(state []float64) (float64, bool) {
	i, ok := P.index[stateKey(state)]
	if !ok {
		return 0, false
	}
	return P.PBar[i], true
}

// PBar obtains, for each coarse-grained state in coarse, the set of fine-grained states
// in fine which project onto it when only the columns in m are kept. Omega1 is the size
// of that set, and PBar the unweighted mean of records_i/nobs over it, i.e. the flat
// estimate of the probability of each fine state when only the coarse state is known.
// m must be a subset of fine.Mapping.
func PBar(fine, coarse *ClusterTable, nobs int, m Mapping) (*ProbTable, error) {
	if nobs <= 0 {
		return nil, &ValidationError{Field: "nobs", Message: fmt.Sprintf("PBar: number of observations must be positive, got %d", nobs), deco: deco{d: []string{"PBar"}}}
	}
	if fine.Records == nil {
		return nil, &ValidationError{Field: "records", Message: "PBar: fine-grained table does not have a 'records' column"}
	}
	pos, err := positions(fine.Mapping, m)
	if err != nil {
		return nil, errDecorate(err, "PBar")
	}
	groups := make(map[string][]float64, coarse.Len())
	proj := make([]float64, len(m))
	for i, s := range fine.States {
		for k, p := range pos {
			proj[k] = s[p]
		}
		key := stateKey(proj)
		groups[key] = append(groups[key], float64(fine.Records[i])/float64(nobs))
	}
	omega := make([]int, 0, coarse.Len())
	pbar := make([]float64, 0, coarse.Len())
	states := make([][]float64, 0, coarse.Len())
	for _, s := range coarse.States {
		probs, ok := groups[stateKey(s)]
		if !ok {
			return nil, &LookupError{State: s, Message: "PBar: coarse-grained state without fine-grained states", deco: deco{d: []string{"PBar"}}}
		}
		states = append(states, append([]float64(nil), s...))
		omega = append(omega, len(probs))
		pbar = append(pbar, stat.Mean(probs, nil))
	}
	return NewProbTable(states, omega, pbar)
}

//positions returns, for each column in sub, its position in super.
func positions(super, sub Mapping) ([]int, error) {
	ret := make([]int, len(sub))
	for i, v := range sub {
		ret[i] = super.Index(v)
		if ret[i] < 0 {
			return nil, &MappingError{Mapping: sub, Message: fmt.Sprintf("column %d is not part of the fine-grained mapping %v", v, super)}
		}
	}
	return ret, nil
}
