/*
 * table.go, part of goMap
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

	"gonum.org/v1/gonum/mat"
)

// Table is an immutable set of configurations. Each row is a sample, each
// column a named coordinate.
type Table struct {
	names []string
	d     *mat.Dense
}

// NewTable returns a Table with the given column names and rows. The data is copied.
// If names is nil, the columns are named by their index.
func NewTable(names []string, rows [][]float64) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &ValidationError{Field: "rows", Message: "NewTable: a table needs at least one row and one column"}
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, v := range rows {
		if len(v) != c {
			return nil, &ValidationError{Field: "rows", Message: fmt.Sprintf("NewTable: row %d has %d values, %d expected", i, len(v), c)}
		}
		data = append(data, v...)
	}
	return NewTableDense(names, mat.NewDense(len(rows), c, data))
}

// NewTableDense returns a Table backed by a copy of d.
func NewTableDense(names []string, d mat.Matrix) (*Table, error) {
	r, c := d.Dims()
	if r == 0 || c == 0 {
		return nil, &ValidationError{Field: "rows", Message: "NewTableDense: a table needs at least one row and one column"}
	}
	if names == nil {
		names = make([]string, c)
		for i := range names {
			names[i] = fmt.Sprintf("%d", i)
		}
	}
	if len(names) != c {
		return nil, &ValidationError{Field: "names", Message: fmt.Sprintf("NewTableDense: %d names given for %d columns", len(names), c)}
	}
	T := &Table{names: make([]string, c), d: mat.DenseCopyOf(d)}
	copy(T.names, names)
	return T, nil
}

// Rows returns the number of samples in the table.
func (T *Table) Rows() int {
	r, _ := T.d.Dims()
	return r
}

// Cols returns the number of coordinates in the table.
func (T *Table) Cols() int {
	_, c := T.d.Dims()
	return c
}

// Names returns a copy of the column names, in order.
func (T *Table) Names() []string {
	ret := make([]string, len(T.names))
	copy(ret, T.names)
	return ret
}

// Name returns the name of the jth column.
func (T *Table) Name(j int) string {
	return T.names[j]
}

// At returns the value of the jth coordinate of the ith sample.
func (T *Table) At(i, j int) float64 {
	return T.d.At(i, j)
}

// Col copies the jth column into dst, which is allocated if nil, and returns it.
func (T *Table) Col(j int, dst []float64) []float64 {
	return mat.Col(dst, j, T.d)
}

// Project puts in dst the values of the ith row for the columns in m,
// in the order given by m. dst is allocated if it doesn't have the right length.
func (T *Table) Project(i int, m Mapping, dst []float64) []float64 {
	if len(dst) != len(m) {
		dst = make([]float64, len(m))
	}
	for k, j := range m {
		dst[k] = T.d.At(i, j)
	}
	return dst
}

// Labels translates the column indexes of a mapping into column names.
func (T *Table) Labels(m Mapping) []string {
	ret := make([]string, 0, len(m))
	for _, j := range m {
		ret = append(ret, T.names[j])
	}
	return ret
}

// All returns the mapping containing every column of the table.
func (T *Table) All() Mapping {
	ret := make(Mapping, T.Cols())
	for i := range ret {
		ret[i] = i
	}
	return ret
}
