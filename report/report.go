/*
 * report.go, part of goMap
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

//Package report writes the results of the evaluation of mappings, as a table
//and as a plot.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	mapent "github.com/rmera/gomap"
	"github.com/rmera/gomap/tableio"
)

// Header is the first line of the result table, without the line terminator.
const Header = "N\tmapping\ttrans_mapping\ths\thk\tsmap\tsmap_inf"

//labels formats a list of labels as ['A', 'B']
func labels(l []string) string {
	q := make([]string, 0, len(l))
	for _, v := range l {
		q = append(q, "'"+v+"'")
	}
	return "[" + strings.Join(q, ", ") + "]"
}

// Line returns the line of the result table that corresponds to r, without the line terminator.
func Line(r mapent.Result) string {
	return fmt.Sprintf("%d\t%s\t%s\t%.6f\t%.6f\t%.6f\t%.6f", r.N, r.Mapping, labels(r.Labels), r.HS, r.HK, r.SMap, r.SMapInf)
}

// Write writes the header and one line per result to w, in the order given.
func Write(w io.Writer, results []mapent.Result) error {
	b := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(b, Header); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(b, Line(r)); err != nil {
			return err
		}
	}
	return b.Flush()
}

// WriteFile writes the results to the file name, compressing them if
// the name ends in a compression extension (.zst, .gz...).
func WriteFile(name string, results []mapent.Result) error {
	f, err := tableio.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
