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

//Package tableio reads and writes configuration tables, optionally compressed.
//The first line of a table contains the column names, and each of the following
//lines a sample. Fields are separated by commas in .csv files, tabs in .tsv files
//and any amount of whitespace otherwise.
package tableio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	mapent "github.com/rmera/gomap"
)

// Separator is the field separator of a table. Whitespace means any run of spaces or tabs.
type Separator rune

const (
	Whitespace Separator = 0
	Comma      Separator = ','
	Tab        Separator = '\t'
)

// SeparatorFor returns the separator that corresponds to the extension of name,
// ignoring any compression extension.
func SeparatorFor(name string) Separator {
	_, base := Split(name)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".csv":
		return Comma
	case ".tsv":
		return Tab
	}
	return Whitespace
}

// Error is returned when a table can't be parsed.
type Error struct {
	Filename string
	Line     int
	Message  string
	deco     []string
}

func (E *Error) Error() string {
	if E.Filename == "" {
		return fmt.Sprintf("goMap/tableio: line %d: %s", E.Line, E.Message)
	}
	return fmt.Sprintf("goMap/tableio: %s, line %d: %s", E.Filename, E.Line, E.Message)
}

// Decorate adds information to the error and returns the decoration slice.
func (E *Error) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

//records returns a function that gives the fields of each non-empty, non-comment line
//of r, with the line number, and io.EOF at the end.
func records(r io.Reader, sep Separator) func() ([]string, int, error) {
	if sep == Whitespace {
		s := bufio.NewScanner(r)
		s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		line := 0
		return func() ([]string, int, error) {
			for s.Scan() {
				line++
				t := strings.TrimSpace(s.Text())
				if t == "" || strings.HasPrefix(t, "#") {
					continue
				}
				return strings.Fields(t), line, nil
			}
			if err := s.Err(); err != nil {
				return nil, line, err
			}
			return nil, line, io.EOF
		}
	}
	c := csv.NewReader(r)
	c.Comma = rune(sep)
	c.Comment = '#'
	c.TrimLeadingSpace = true
	c.FieldsPerRecord = -1 //we check it ourselves, to give a better message.
	return func() ([]string, int, error) {
		rec, err := c.Read()
		if err != nil {
			if pe, ok := err.(*csv.ParseError); ok {
				return nil, pe.Line, err
			}
			return nil, 0, err
		}
		line, _ := c.FieldPos(0)
		return rec, line, nil
	}
}

// Read reads a table from r. The first record contains the column names.
func Read(r io.Reader, sep Separator) (*mapent.Table, error) {
	next := records(r, sep)
	names, line, err := next()
	if err == io.EOF {
		return nil, &Error{Line: line, Message: "empty table", deco: []string{"Read"}}
	}
	if err != nil {
		return nil, &Error{Line: line, Message: err.Error(), deco: []string{"Read"}}
	}
	for i, v := range names {
		names[i] = strings.TrimSpace(v)
	}
	names = append([]string(nil), names...) //the csv reader may reuse the slice
	rows := make([][]float64, 0, 1024)
	for {
		rec, line, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &Error{Line: line, Message: err.Error(), deco: []string{"Read"}}
		}
		if len(rec) != len(names) {
			return nil, &Error{Line: line, Message: fmt.Sprintf("%d fields, %d expected", len(rec), len(names)), deco: []string{"Read"}}
		}
		row := make([]float64, len(rec))
		for j, v := range rec {
			row[j], err = strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, &Error{Line: line, Message: fmt.Sprintf("column %s: %v", names[j], err), deco: []string{"Read"}}
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, &Error{Line: line, Message: "table has no samples", deco: []string{"Read"}}
	}
	return mapent.NewTable(names, rows)
}

// ReadFile reads a table from the file name. The compression and separator
// are deduced from the extensions of the name.
func ReadFile(name string) (*mapent.Table, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	T, err := Read(f, SeparatorFor(name))
	if e, ok := err.(*Error); ok {
		e.Filename = name
		e.Decorate("ReadFile")
	}
	return T, err
}

// Write writes T to w, header included.
func Write(w io.Writer, T *mapent.Table, sep Separator) error {
	s := string(sep)
	if sep == Whitespace {
		s = " "
	}
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, strings.Join(T.Names(), s))
	fields := make([]string, T.Cols())
	row := make([]float64, T.Cols())
	all := T.All()
	for i := 0; i < T.Rows(); i++ {
		row = T.Project(i, all, row)
		for j, v := range row {
			fields[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Fprintln(b, strings.Join(fields, s))
	}
	return b.Flush()
}

// WriteClusters writes the states of C to w, with their records as an extra
// last column named "records".
func WriteClusters(w io.Writer, C *mapent.ClusterTable, sep Separator) error {
	s := string(sep)
	if sep == Whitespace {
		s = " "
	}
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, strings.Join(append(append([]string(nil), C.Names...), "records"), s))
	fields := make([]string, len(C.Mapping)+1)
	for i, st := range C.States {
		for j, v := range st {
			fields[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		r := ""
		if C.Records != nil {
			r = strconv.Itoa(C.Records[i])
		}
		fields[len(fields)-1] = r
		fmt.Fprintln(b, strings.Join(fields, s))
	}
	return b.Flush()
}

// WriteFile writes T to the file name, with the separator and compression
// deduced from its extensions.
func WriteFile(name string, T *mapent.Table) error {
	f, err := Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, T, SeparatorFor(name)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
