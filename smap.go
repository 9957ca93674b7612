/*
 * smap.go, part of goMap
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
	"math"
	"strconv"
	"strings"
)

// SMap returns the finite-sample mapping entropy, the Kullback-Leibler divergence
// between the fine-grained distribution pr and the distribution reconstructed from
// the coarse-grained mapping m:
//
//	smap = sum_i pr_i ln(pr_i/pbar(v_i))
//
// where v_i is the projection of the ith state of fine onto the columns of m.
// pr must have one frequency per state in fine, and pbar must contain every v_i.
func SMap(fine *ClusterTable, m Mapping, pr []float64, pbar *ProbTable) (float64, error) {
	if len(pr) != fine.Len() {
		return 0, &ValidationError{Field: "pr", Message: fmt.Sprintf("SMap: %d frequencies given for %d states", len(pr), fine.Len())}
	}
	pos, err := positions(fine.Mapping, m)
	if err != nil {
		return 0, errDecorate(err, "SMap")
	}
	var smap float64
	proj := make([]float64, len(m))
	for i, s := range fine.States {
		for k, p := range pos {
			proj[k] = s[p]
		}
		pb, ok := pbar.Lookup(proj)
		if !ok {
			return 0, &LookupError{State: append([]float64(nil), proj...), Message: "SMap: state not found in p_bar table", deco: deco{d: []string{"SMap"}}}
		}
		if pr[i] == 0 || pr[i] == pb {
			continue //0 ln 0 = 0, and p ln 1 = 0
		}
		smap += pr[i] * math.Log(pr[i]/pb)
	}
	//A Kullback-Leibler divergence is never negative.
	return math.Max(0, smap), nil
}

// SMapInf extrapolates the mapping entropy to the limit of infinite sampling.
// nat and ncg are the number of distinct fine-grained and coarse-grained states,
// hsat and hscg their state entropies and V the volume given by Volume.
//
//	smap_inf = (hsat - hscg) - (nat - ncg) ln V
//
// A coarser description can have neither more states nor more entropy than the finer
// one it comes from; a *ConsistencyError is returned if that happens.
func SMapInf(nat, ncg int, hsat, hscg, V float64) (float64, error) {
	if nat < ncg {
		return 0, &ConsistencyError{Message: fmt.Sprintf("n (%d) < N (%d): the coarse-grained mapping has more states than the fine-grained one", nat, ncg), deco: deco{d: []string{"SMapInf"}}}
	}
	if hsat < hscg {
		return 0, &ConsistencyError{Message: fmt.Sprintf("hs_at (%s) < hs_cg (%s): the coarse-grained mapping has more entropy than the fine-grained one", decimal(hsat), decimal(hscg)), deco: deco{d: []string{"SMapInf"}}}
	}
	return (hsat - hscg) - float64(nat-ncg)*math.Log(V), nil
}

//decimal formats v with all the digits needed to represent it, keeping
//a decimal point for whole numbers (1.0, not 1).
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
