/*
 * doc.go, part of goMap
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

/*
Package mapent is the main package of the goMap library. It measures how much
information is lost when a set of discrete configurations, described by many
coordinates, is reduced to a coarse-grained description that keeps only some
of them (a mapping).

	**goMap Capabilities**

	Clusters the samples of a table into distinct states, for any subset of its columns.

	Obtains the state entropy (hs) and the degeneracy, or resolution, entropy (hk)
	of a clustered table.

	Obtains the averaged probabilities (p_bar) that a coarse-grained mapping assigns
	to the fine-grained states.

	Obtains the mapping entropy (smap), the Kullback-Leibler divergence between the
	fine-grained distribution and the one reconstructed from the mapping, and its
	extrapolation to infinite sampling (smap_inf).

The subpackages read tables (tableio) and parameter files (params), enumerate
candidate mappings (candidates), evaluate them concurrently (driver) and write
the results (report). The gomap command puts everything together.

All the functions in this package are pure: tables are never modified, so the
evaluation of different mappings can proceed concurrently.
*/
package mapent
