/*
 * entropy.go, part of goMap
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
	"math"
	"sort"
)

// Entropies returns the state entropy hs and the degeneracy entropy hk of the
// cluster table C. With M the total number of records and k_s the records of state s:
//
//	hs = -sum_s (k_s/M) ln(k_s/M)
//	hk = -sum_k (k m_k/M) ln(k m_k/M)
//
// where m_k is the number of states with exactly k records. hk is zero when all
// the states have the same multiplicity.
// States with zero records are ignored. An empty table has zero entropies.
func Entropies(C *ClusterTable) (hs, hk float64, err error) {
	if C.Records == nil {
		return 0, 0, &ValidationError{Field: "records", Message: "cluster table does not have a 'records' column", deco: deco{d: []string{"Entropies"}}}
	}
	mk := make(map[int]int)
	ks := make([]int, 0, len(C.Records))
	for _, v := range C.Records {
		if v < 0 {
			return 0, 0, &ValidationError{Field: "records", Message: "'records' column in cluster table contains negative values", deco: deco{d: []string{"Entropies"}}}
		}
		if v > 0 {
			mk[v]++
			ks = append(ks, v)
		}
	}
	//We sort the k values so the sums are always done in the same order.
	kvals := make([]int, 0, len(mk))
	for k := range mk {
		kvals = append(kvals, k)
	}
	sort.Ints(kvals)
	kmk := make([]int, 0, len(kvals))
	for _, k := range kvals {
		kmk = append(kmk, k*mk[k])
	}
	return shannon(ks), shannon(kmk), nil
}

//shannon returns the Shannon entropy (in nats) of the distribution obtained
//by normalizing counts, all of which must be positive. It uses
//H = ln M - (1/M) sum_i c_i ln c_i. A single bin has zero entropy, and the
//result is never negative.
func shannon(counts []int) float64 {
	if len(counts) <= 1 {
		return 0
	}
	M := 0
	for _, c := range counts {
		M += c
	}
	if M == 0 {
		return 0
	}
	var s float64
	for _, c := range counts {
		fc := float64(c)
		s += fc * math.Log(fc)
	}
	return math.Max(0, math.Log(float64(M))-s/float64(M))
}
