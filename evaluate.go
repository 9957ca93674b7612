/*
 * evaluate.go, part of goMap
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

import "fmt"

// Result contains the quantities obtained for one mapping.
type Result struct {
	N       int //number of coordinates kept by the mapping
	Mapping Mapping
	Labels  []string
	HS      float64
	HK      float64
	SMap    float64
	SMapInf float64
}

// Reference holds the fine-grained (atomistic) description of a table, which
// is obtained once and shared by the evaluation of all the mappings.
// It is not modified after NewReference returns, so Evaluate can be called
// concurrently.
type Reference struct {
	table *Table
	at    *ClusterTable
	pr    []float64
	hsat  float64
	vol   float64
}

// NewReference clusters T using all its columns and obtains the fine-grained
// state entropy, frequencies and volume.
func NewReference(T *Table) (*Reference, error) {
	at, err := Cluster(T, T.All())
	if err != nil {
		return nil, errDecorate(err, "NewReference")
	}
	if err := ValidateClusters(at); err != nil {
		return nil, errDecorate(err, "NewReference")
	}
	hsat, _, err := Entropies(at)
	if err != nil {
		return nil, errDecorate(err, "NewReference")
	}
	V, err := Volume(T, T.Cols())
	if err != nil {
		return nil, errDecorate(err, "NewReference")
	}
	return &Reference{table: T, at: at, pr: at.Frequencies(T.Rows()), hsat: hsat, vol: V}, nil
}

// Table returns the table from which the reference was built.
func (R *Reference) Table() *Table { return R.table }

// States returns the number of distinct fine-grained states.
func (R *Reference) States() int { return R.at.Len() }

// HS returns the fine-grained state entropy.
func (R *Reference) HS() float64 { return R.hsat }

// Volume returns the volume used in the extrapolation of the mapping entropy.
func (R *Reference) Volume() float64 { return R.vol }

// Evaluate obtains hs, hk, smap and smap_inf for the mapping m. If labels is nil,
// the column names of the table are used.
func (R *Reference) Evaluate(m Mapping, labels []string) (Result, error) {
	dec := func(err error) error {
		return errDecorate(err, fmt.Sprintf("Evaluate: mapping %v", m))
	}
	cg, err := Cluster(R.table, m)
	if err != nil {
		return Result{}, dec(err)
	}
	if err := ValidateClusters(cg); err != nil {
		return Result{}, dec(err)
	}
	hs, hk, err := Entropies(cg)
	if err != nil {
		return Result{}, dec(err)
	}
	pbar, err := PBar(R.at, cg, R.table.Rows(), m)
	if err != nil {
		return Result{}, dec(err)
	}
	smap, err := SMap(R.at, m, R.pr, pbar)
	if err != nil {
		return Result{}, dec(err)
	}
	sinf, err := SMapInf(R.at.Len(), cg.Len(), R.hsat, hs, R.vol)
	if err != nil {
		return Result{}, dec(err)
	}
	if labels == nil {
		labels = R.table.Labels(m)
	}
	return Result{
		N:       len(m),
		Mapping: append(Mapping(nil), m...),
		Labels:  append([]string(nil), labels...),
		HS:      hs,
		HK:      hk,
		SMap:    smap,
		SMapInf: sinf,
	}, nil
}
