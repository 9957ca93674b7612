/*
 * volume.go, part of goMap
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

	"gonum.org/v1/gonum/floats"
)

// Volume returns the largest number of discrete values (max-min+1) spanned by any
// of the first ncols columns of T. It is the number of distinguishable states
// along the widest coordinate axis, and it is used to normalize the extrapolation
// of the mapping entropy.
func Volume(T *Table, ncols int) (float64, error) {
	if ncols <= 0 || ncols > T.Cols() {
		return 0, &ValidationError{Field: "ncols", Message: fmt.Sprintf("Volume: %d columns requested, table has %d", ncols, T.Cols())}
	}
	var V float64
	col := make([]float64, T.Rows())
	for j := 0; j < ncols; j++ {
		col = T.Col(j, col)
		r := floats.Max(col) - floats.Min(col) + 1
		if r > V {
			V = r
		}
	}
	return V, nil
}
