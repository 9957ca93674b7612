/*
 * cluster.go, part of goMap
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
	"fmt"

	mapent "github.com/rmera/gomap"
	"github.com/rmera/gomap/candidates"
	"github.com/rmera/gomap/tableio"
	"github.com/spf13/cobra"
)

func newClusterCmd() *cobra.Command {
	var cols []int
	var sep string
	cmd := &cobra.Command{
		Use:   "cluster INPUT",
		Short: "Print the distinct states of a table and their records",
		Long: `cluster groups the samples of the input table that are equal on the selected
columns (all of them by default) and prints one line per distinct state, with the
number of samples in it, in order of first appearance. hs and hk are logged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			T, err := tableio.ReadFile(args[0])
			if err != nil {
				return err
			}
			m, labels := T.All(), T.Names()
			if len(cols) > 0 {
				c, err := candidates.FromIndexes(T.Names(), [][]int{cols})
				if err != nil {
					return err
				}
				m, labels = c[0].Mapping, c[0].Labels
			}
			C, err := mapent.Cluster(T, m)
			if err != nil {
				return err
			}
			hs, hk, err := mapent.Entropies(C)
			if err != nil {
				return err
			}
			log.Info("clustered", "mapping", m.String(), "labels", labels, "samples", T.Rows(), "states", C.Len(), "hs", hs, "hk", hk)
			s := tableio.Comma
			switch sep {
			case "comma":
			case "tab":
				s = tableio.Tab
			case "space":
				s = tableio.Whitespace
			default:
				return fmt.Errorf("unknown separator %q", sep)
			}
			return tableio.WriteClusters(cmd.OutOrStdout(), C, s)
		},
	}
	cmd.Flags().IntSliceVarP(&cols, "mapping", "m", nil, "column indexes to keep, e.g. 0,2")
	cmd.Flags().StringVar(&sep, "sep", "comma", "output separator: comma, tab or space")
	return cmd
}
