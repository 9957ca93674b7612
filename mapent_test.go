/*
 * mapent_test.go, part of goMap
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
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//cols builds a table from columns, which is how the test cases are easier to read.
func cols(Te *testing.T, names []string, c ...[]float64) *Table {
	Te.Helper()
	rows := make([][]float64, len(c[0]))
	for i := range rows {
		rows[i] = make([]float64, len(c))
		for j := range c {
			rows[i][j] = c[j][i]
		}
	}
	T, err := NewTable(names, rows)
	require.NoError(Te, err)
	return T
}

func TestVolume(Te *testing.T) {
	T := cols(Te, []string{"a", "b"}, []float64{0, 0, 1}, []float64{1, 0, 1})
	V, err := Volume(T, T.Cols())
	require.NoError(Te, err)
	assert.Equal(Te, 2.0, V)

	T = cols(Te, []string{"a", "b"}, []float64{0, 0, 1}, []float64{-2, 0, 3})
	V, err = Volume(T, 1)
	require.NoError(Te, err)
	assert.Equal(Te, 2.0, V)
	V, err = Volume(T, 2)
	require.NoError(Te, err)
	assert.Equal(Te, 6.0, V)

	_, err = Volume(T, 3)
	var verr *ValidationError
	assert.True(Te, errors.As(err, &verr))
}

func TestAtClust(Te *testing.T) {
	T := cols(Te, []string{"a", "b"}, []float64{1, 0, 1, 1, 1}, []float64{-1, 4, -1, 4, 0})
	at, err := Cluster(T, Mapping{0, 1})
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{{1, -1}, {0, 4}, {1, 4}, {1, 0}}, at.States)
	assert.Equal(Te, []int{2, 1, 1, 1}, at.Records)
	assert.Equal(Te, []string{"a", "b"}, at.Names)
	assert.Equal(Te, T.Rows(), at.Total())
	assert.NoError(Te, ValidateClusters(at))
}

func TestCGClust(Te *testing.T) {
	T := cols(Te, []string{"a", "b"}, []float64{0, 1, 1, 1}, []float64{4, -1, 0, 4})
	cg, err := Cluster(T, Mapping{0})
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{{0}, {1}}, cg.States)
	assert.Equal(Te, []int{1, 3}, cg.Records)
	assert.Equal(Te, []string{"a"}, cg.Names)
}

func TestClusterReordered(Te *testing.T) {
	T := cols(Te, []string{"a", "b"}, []float64{0, 1, 1}, []float64{4, 5, 5})
	cg, err := Cluster(T, Mapping{1, 0})
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{{4, 0}, {5, 1}}, cg.States)
	assert.Equal(Te, []int{1, 2}, cg.Records)
}

func TestClusterNegativeZero(Te *testing.T) {
	T := cols(Te, []string{"a"}, []float64{0, math.Copysign(0, -1), 1})
	cg, err := Cluster(T, Mapping{0})
	require.NoError(Te, err)
	assert.Equal(Te, 2, cg.Len())
	assert.Equal(Te, []int{2, 1}, cg.Records)
}

func TestClusterInvariants(Te *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rows := make([][]float64, 500)
	for i := range rows {
		rows[i] = []float64{float64(rng.Intn(3)), float64(rng.Intn(4)), float64(rng.Intn(2)), float64(rng.Intn(5))}
	}
	T, err := NewTable(nil, rows)
	require.NoError(Te, err)
	for _, m := range []Mapping{{0}, {3, 1}, {0, 1, 2}, {0, 1, 2, 3}} {
		c, err := Cluster(T, m)
		require.NoError(Te, err)
		assert.Equal(Te, T.Rows(), c.Total(), "mapping %v", m)
		assert.NoError(Te, ValidateClusters(c), "mapping %v", m)
	}
}

func TestClusterBadMapping(Te *testing.T) {
	T := cols(Te, []string{"a", "b"}, []float64{0, 1}, []float64{4, 5})
	for _, m := range []Mapping{{}, {2}, {-1}, {0, 0}} {
		_, err := Cluster(T, m)
		var merr *MappingError
		assert.True(Te, errors.As(err, &merr), "mapping %v", m)
	}
}

func TestCGClustError(Te *testing.T) {
	//the row (1,-1) is a duplicate
	wrong := &ClusterTable{
		Mapping: Mapping{0, 1},
		States:  [][]float64{{1, -1}, {0, 4}, {1, -1}, {1, 4}, {1, 0}},
		Records: []int{1, 2, 3, 4, 5},
	}
	err := ValidateClusters(wrong)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "Duplicate row detected in dataframe")
	var derr *DuplicateStateError
	require.True(Te, errors.As(err, &derr))
	assert.Equal(Te, 0, derr.First)
	assert.Equal(Te, 2, derr.Second)
	assert.Equal(Te, []float64{1, -1}, derr.State)
}

func TestCalculatePBar(Te *testing.T) {
	T := cols(Te, []string{"a", "b"}, []float64{0, 1, 1, 1}, []float64{4, -1, -1, 4})
	at, err := Cluster(T, Mapping{0, 1})
	require.NoError(Te, err)
	m := Mapping{0}
	cg, err := Cluster(T, m)
	require.NoError(Te, err)
	//keeping only "a" gives the state 0, with 1 fine state (1 sample), and
	//the state 1, with 2 fine states (3 samples). pbar(0) = 0.25, pbar(1) = 0.75/2
	pbar, err := PBar(at, cg, T.Rows(), m)
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{{0}, {1}}, pbar.States)
	assert.Equal(Te, []int{1, 2}, pbar.Omega1)
	assert.Equal(Te, []float64{0.25, 0.375}, pbar.PBar)
	p, ok := pbar.Lookup([]float64{1})
	assert.True(Te, ok)
	assert.Equal(Te, 0.375, p)
	_, ok = pbar.Lookup([]float64{7})
	assert.False(Te, ok)
}

func TestPBarErrors(Te *testing.T) {
	T := cols(Te, []string{"a", "b"}, []float64{0, 1, 1, 1}, []float64{4, -1, -1, 4})
	at, err := Cluster(T, Mapping{0})
	require.NoError(Te, err)
	cg, err := Cluster(T, Mapping{1})
	require.NoError(Te, err)
	_, err = PBar(at, cg, T.Rows(), Mapping{1})
	var merr *MappingError
	assert.True(Te, errors.As(err, &merr))

	_, err = PBar(at, at, 0, Mapping{0})
	var verr *ValidationError
	assert.True(Te, errors.As(err, &verr))

	orphan := &ClusterTable{Mapping: Mapping{0}, States: [][]float64{{0}, {9}}, Records: []int{1, 3}}
	_, err = PBar(at, orphan, T.Rows(), Mapping{0})
	var lerr *LookupError
	assert.True(Te, errors.As(err, &lerr))
	assert.Equal(Te, []float64{9}, lerr.State)
}

func TestSMapZero(Te *testing.T) {
	T := cols(Te, []string{"a", "b"}, []float64{0, 1, 1, 0}, []float64{4, -1, -1, 4})
	at, err := Cluster(T, Mapping{0, 1})
	require.NoError(Te, err)
	pr := at.Frequencies(T.Rows())
	pbar, err := NewProbTable([][]float64{{0}, {1}}, []int{2, 2}, []float64{0.5, 0.5})
	require.NoError(Te, err)
	smap, err := SMap(at, Mapping{0}, pr, pbar)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, smap)
}

func TestSMapNonNegative(Te *testing.T) {
	T := cols(Te, []string{"a", "b", "c"},
		[]float64{0, 1, 1, 0, 2, 2, 1, 0, 1, 2, 0},
		[]float64{3, 3, 1, 1, 2, 3, 3, 1, 2, 2, 2},
		[]float64{0, 0, 0, 1, 1, 1, 0, 0, 1, 1, 0})
	R, err := NewReference(T)
	require.NoError(Te, err)
	for _, m := range []Mapping{{0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}, {0, 1, 2}} {
		r, err := R.Evaluate(m, nil)
		require.NoError(Te, err)
		assert.GreaterOrEqual(Te, r.SMap, 0.0, "mapping %v", m)
	}
	//every state is kept apart, so nothing is lost.
	r, err := R.Evaluate(T.All(), nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, r.SMap)
}

func TestSMapLossy(Te *testing.T) {
	T := cols(Te, []string{"a", "b"}, []float64{0, 1, 1, 1}, []float64{4, -1, -1, 4})
	at, err := Cluster(T, Mapping{0, 1})
	require.NoError(Te, err)
	m := Mapping{0}
	cg, err := Cluster(T, m)
	require.NoError(Te, err)
	pbar, err := PBar(at, cg, T.Rows(), m)
	require.NoError(Te, err)
	smap, err := SMap(at, m, at.Frequencies(T.Rows()), pbar)
	require.NoError(Te, err)
	expected := 0.5*math.Log(0.5/0.375) + 0.25*math.Log(0.25/0.375)
	assert.InDelta(Te, expected, smap, 1e-12)
	assert.Greater(Te, smap, 0.0)
}

func TestSMapErrors(Te *testing.T) {
	T := cols(Te, []string{"a", "b"}, []float64{0, 1, 1, 0}, []float64{4, -1, -1, 4})
	at, err := Cluster(T, Mapping{0, 1})
	require.NoError(Te, err)
	pbar, err := NewProbTable([][]float64{{0}}, []int{1}, []float64{0.5})
	require.NoError(Te, err)
	_, err = SMap(at, Mapping{0}, at.Frequencies(T.Rows()), pbar)
	var lerr *LookupError
	require.True(Te, errors.As(err, &lerr))
	assert.Equal(Te, []float64{1}, lerr.State)

	_, err = SMap(at, Mapping{0}, []float64{1}, pbar)
	var verr *ValidationError
	assert.True(Te, errors.As(err, &verr))
}

func TestSMapInfError(Te *testing.T) {
	_, err := SMapInf(9, 10, 0.0, 0.0, 2)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "n (9) < N (10)")
	var cerr *ConsistencyError
	assert.True(Te, errors.As(err, &cerr))

	_, err = SMapInf(10, 9, 0.0, 1.0, 2)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "hs_at (0.0) < hs_cg (1.0)")

	_, err = SMapInf(10, 9, 0.25, 1.5, 2)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "hs_at (0.25) < hs_cg (1.5)")
	assert.True(Te, errors.As(err, &cerr))
}

func TestSMapInfZero(Te *testing.T) {
	sinf, err := SMapInf(2, 1, math.Log(9), math.Log(3), 3)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, sinf)
}

func TestHsHkError(Te *testing.T) {
	C := &ClusterTable{Mapping: Mapping{0, 1}, States: [][]float64{{0, 4}, {1, -1}}}
	_, _, err := Entropies(C)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "does not have a 'records' column")

	C.Records = []int{1, -1}
	_, _, err = Entropies(C)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "'records' column in cluster table contains negative values")
	var verr *ValidationError
	require.True(Te, errors.As(err, &verr))
	assert.Equal(Te, "records", verr.Field)
}

func TestHsHk(Te *testing.T) {
	C := &ClusterTable{Mapping: Mapping{0, 1}, States: [][]float64{{0, 4}, {1, -1}}, Records: []int{1, 1}}
	hs, hk, err := Entropies(C)
	require.NoError(Te, err)
	assert.Equal(Te, math.Log(2), hs)
	assert.Equal(Te, 0.0, hk)
}

func TestHsHkHeterogeneous(Te *testing.T) {
	C := &ClusterTable{Mapping: Mapping{0}, States: [][]float64{{0}, {1}, {2}}, Records: []int{1, 2, 1}}
	hs, hk, err := Entropies(C)
	require.NoError(Te, err)
	assert.InDelta(Te, -0.5*math.Log(0.25)-0.5*math.Log(0.5), hs, 1e-12)
	//k=1 appears twice and k=2 once, so both carry half of the samples.
	assert.InDelta(Te, math.Log(2), hk, 1e-12)
	assert.Greater(Te, hk, 0.0)

	C.Records = []int{3, 3, 3}
	hs, hk, err = Entropies(C)
	require.NoError(Te, err)
	assert.InDelta(Te, math.Log(3), hs, 1e-12)
	assert.Equal(Te, 0.0, hk)

	C.Records = []int{0, 0, 0}
	hs, hk, err = Entropies(C)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, hs)
	assert.Equal(Te, 0.0, hk)
}

func TestHsHkSingleBin(Te *testing.T) {
	//One state, or many states with the same multiplicity, carry no entropy.
	for n := 1; n <= 2000; n++ {
		C := &ClusterTable{Mapping: Mapping{0}, States: [][]float64{{0}}, Records: []int{n}}
		hs, hk, err := Entropies(C)
		require.NoError(Te, err)
		require.Equal(Te, 0.0, hs, "records [%d]", n)
		require.Equal(Te, 0.0, hk, "records [%d]", n)
	}
	for k := 1; k <= 50; k++ {
		for n := 1; n <= 50; n++ {
			C := &ClusterTable{Mapping: Mapping{0}}
			for i := 0; i < n; i++ {
				C.States = append(C.States, []float64{float64(i)})
				C.Records = append(C.Records, k)
			}
			hs, hk, err := Entropies(C)
			require.NoError(Te, err)
			require.Equal(Te, 0.0, hk, "k=%d n=%d", k, n)
			require.GreaterOrEqual(Te, hs, 0.0, "k=%d n=%d", k, n)
			require.InDelta(Te, math.Log(float64(n)), hs, 1e-12, "k=%d n=%d", k, n)
		}
	}
}

func TestEvaluate(Te *testing.T) {
	T := cols(Te, []string{"A", "B", "C"},
		[]float64{0, 1, 1, 1, 0, 0, 1, 0},
		[]float64{4, -1, -1, 4, 4, 2, 2, 4},
		[]float64{1, 1, 1, 1, 1, 1, 1, 1})
	R, err := NewReference(T)
	require.NoError(Te, err)
	assert.Equal(Te, 5, R.States())
	assert.Equal(Te, 6.0, R.Volume())

	//C is constant, dropping it loses nothing.
	res, err := R.Evaluate(Mapping{0, 1}, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 2, res.N)
	assert.Equal(Te, Mapping{0, 1}, res.Mapping)
	assert.Equal(Te, []string{"A", "B"}, res.Labels)
	assert.InDelta(Te, 0.0, res.SMap, 1e-15)
	assert.InDelta(Te, R.HS(), res.HS, 1e-15)
	assert.InDelta(Te, 0.0, res.SMapInf, 1e-15)

	res, err = R.Evaluate(Mapping{2}, []string{"const"})
	require.NoError(Te, err)
	assert.Equal(Te, 1, res.N)
	assert.Equal(Te, []string{"const"}, res.Labels)
	assert.Equal(Te, 0.0, res.HS)
	assert.Greater(Te, res.SMap, 0.0)

	_, err = R.Evaluate(Mapping{3}, nil)
	var merr *MappingError
	require.True(Te, errors.As(err, &merr))
	assert.Contains(Te, merr.Decorate(""), "Evaluate: mapping [3]")
}

func TestMapping(Te *testing.T) {
	m := Mapping{2, 6}
	assert.Equal(Te, "[2 6]", m.String())
	assert.True(Te, Mapping{6}.SubsetOf(m))
	assert.False(Te, Mapping{1, 6}.SubsetOf(m))
	assert.Equal(Te, 1, m.Index(6))
	assert.Equal(Te, -1, m.Index(0))
	assert.NoError(Te, m.Check(7))
	assert.Error(Te, m.Check(6))
}

func TestNewTableErrors(Te *testing.T) {
	_, err := NewTable(nil, nil)
	assert.Error(Te, err)
	_, err = NewTable(nil, [][]float64{{1, 2}, {3}})
	assert.Error(Te, err)
	_, err = NewTable([]string{"a"}, [][]float64{{1, 2}})
	assert.Error(Te, err)
	T, err := NewTable(nil, [][]float64{{1, 2}})
	require.NoError(Te, err)
	assert.Equal(Te, []string{"0", "1"}, T.Names())
}
