/*
 * driver.go, part of goMap
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

//Package driver evaluates many candidate mappings concurrently. The failure
//of one mapping is logged and reported, but doesn't stop the evaluation of the others.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	mapent "github.com/rmera/gomap"
	"github.com/rmera/gomap/candidates"
	"golang.org/x/sync/errgroup"
)

// Options for Run. The zero value is usable.
type Options struct {
	Workers int          //concurrent evaluations. runtime.NumCPU() if <= 0.
	Logger  *slog.Logger //slog.Default() if nil.
	Metrics *Metrics     //not recorded if nil.
}

// Failure is a mapping whose evaluation returned an error.
type Failure struct {
	Index     int //position of the mapping in the candidates given
	Candidate candidates.Candidate
	Err       error
}

func (F Failure) Error() string {
	return fmt.Sprintf("mapping %v: %v", F.Candidate.Mapping, F.Err)
}

func (F Failure) Unwrap() error { return F.Err }

// Run evaluates every candidate against the reference R. The results of the successful
// evaluations are returned in the order of cands, and the failed ones, also in order,
// as Failures. The only error returned is the one of ctx, if it is canceled
// before all the candidates are evaluated.
func Run(ctx context.Context, R *mapent.Reference, cands []candidates.Candidate, o Options) ([]mapent.Result, []Failure, error) {
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := o.Logger
	if log == nil {
		log = slog.Default()
	}
	results := make([]mapent.Result, len(cands))
	errs := make([]error, len(cands))
	done := make([]bool, len(cands))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	log.Info("evaluating mappings", "candidates", len(cands), "workers", workers, "states", R.States(), "hs_at", R.HS(), "volume", R.Volume())
	for i, c := range cands {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res, err := R.Evaluate(c.Mapping, c.Labels)
			elapsed := time.Since(start)
			o.Metrics.observe(err, elapsed)
			if err != nil {
				log.Warn("mapping evaluation failed", "mapping", c.Mapping.String(), "N", len(c.Mapping), "error", err)
				errs[i] = err
			} else {
				log.Debug("mapping evaluated", "mapping", c.Mapping.String(), "N", res.N, "smap", res.SMap, "smap_inf", res.SMapInf, "duration", elapsed)
				results[i] = res
			}
			done[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	ok := make([]mapent.Result, 0, len(cands))
	var failed []Failure
	for i := range cands {
		if !done[i] {
			continue
		}
		if errs[i] != nil {
			failed = append(failed, Failure{Index: i, Candidate: cands[i], Err: errs[i]})
			continue
		}
		ok = append(ok, results[i])
	}
	log.Info("mappings evaluated", "ok", len(ok), "failed", len(failed))
	return ok, failed, nil
}
