/*
 * run.go, part of goMap
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

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	mapent "github.com/rmera/gomap"
	"github.com/rmera/gomap/candidates"
	"github.com/rmera/gomap/driver"
	"github.com/rmera/gomap/params"
	"github.com/rmera/gomap/report"
	"github.com/rmera/gomap/tableio"
	"github.com/spf13/cobra"
)

type runOptions struct {
	workers     int
	plot        string
	metricsFile string
	force       bool
}

func newRunCmd() *cobra.Command {
	o := new(runOptions)
	cmd := &cobra.Command{
		Use:   "run PARAMETER_FILE",
		Short: "Evaluate all the mappings up to max_binom coordinates",
		Long: `run reads the parameter file, loads the input table, evaluates every mapping
that keeps between 1 and max_binom coordinates and writes hs, hk, smap and smap_inf
for each of them to the output file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], o)
		},
	}
	cmd.Flags().IntVarP(&o.workers, "workers", "w", 0, "mappings evaluated concurrently (0: one per CPU)")
	cmd.Flags().StringVar(&o.plot, "plot", "", "also plot smap and smap_inf to this file (png, svg, pdf)")
	cmd.Flags().StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics of the run to this file")
	cmd.Flags().BoolVarP(&o.force, "force", "f", false, "overwrite the output file if it exists")
	return cmd
}

func run(ctx context.Context, parfile string, o *runOptions) error {
	log := newLogger()
	start := time.Now()
	P, err := params.Load(parfile, o.force)
	if err != nil {
		return err
	}
	log.Info("parameters read", "input_filename", P.InputFilename, "output_filename", P.OutputFilename, "max_binom", P.MaxBinom)
	T, err := tableio.ReadFile(P.InputFilename)
	if err != nil {
		return fmt.Errorf("reading input table: %w", err)
	}
	log.Info("table read", "samples", T.Rows(), "coordinates", T.Cols())
	R, err := mapent.NewReference(T)
	if err != nil {
		return fmt.Errorf("fine-grained reference: %w", err)
	}
	cands, err := candidates.Enumerate(T.Names(), P.MaxBinom)
	if err != nil {
		return err
	}
	var reg *prometheus.Registry
	var M *driver.Metrics
	if o.metricsFile != "" {
		reg = prometheus.NewRegistry()
		M = driver.NewMetrics(reg)
	}
	results, failed, err := driver.Run(ctx, R, cands, driver.Options{Workers: o.workers, Logger: log, Metrics: M})
	if err != nil {
		return err
	}
	for _, f := range failed {
		log.Error("mapping skipped", "mapping", f.Candidate.Mapping.String(), "error", f.Err)
	}
	if err := report.WriteFile(P.OutputFilename, results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	if o.plot != "" {
		if err := report.Plot(results, fmt.Sprintf("%s, %d mappings", P.InputFilename, len(results)), o.plot); err != nil {
			return fmt.Errorf("plotting results: %w", err)
		}
	}
	if reg != nil {
		if err := prometheus.WriteToTextfile(o.metricsFile, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	log.Info("done", "output_filename", P.OutputFilename, "mappings", len(results), "failed", len(failed), "elapsed", time.Since(start))
	return nil
}
