/*
 * errors.go, part of goMap
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
	"strings"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// The decoration slice contains the functions in the calling stack, optionally followed by
// relevant information, in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

//deco is embedded in all the error types of the package.
type deco struct {
	d []string
}

// Decorate adds dec to the decoration slice of the error, and returns the resulting slice.
// If dec is empty, it just returns the current slice.
func (D *deco) Decorate(dec string) []string {
	if dec != "" {
		D.d = append(D.d, dec)
	}
	return D.d
}

func (D *deco) trace() string {
	if len(D.d) == 0 {
		return ""
	}
	return " (" + strings.Join(D.d, " <- ") + ")"
}

//errDecorate decorates err with caller if err is an Error, and returns it.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}

// DuplicateStateError is returned when two states of a cluster table are equal,
// ignoring their records. It means the table was not properly clustered.
type DuplicateStateError struct {
	deco
	First, Second int //row indexes
	State         []float64
}

func (E *DuplicateStateError) Error() string {
	return fmt.Sprintf("goMap: Duplicate row detected in dataframe: rows %d and %d are both %v%s", E.First, E.Second, E.State, E.trace())
}

// ValidationError is returned when a table lacks a required column, or
// a column has values it should not have.
type ValidationError struct {
	deco
	Field   string
	Message string
}

func (E *ValidationError) Error() string {
	return fmt.Sprintf("goMap: %s%s", E.Message, E.trace())
}

// ConsistencyError means that a finer and a coarser description violate
// the hierarchy between them (the coarse one has more states, or more entropy).
// Both offending values are part of the message.
type ConsistencyError struct {
	deco
	Message string
}

func (E *ConsistencyError) Error() string {
	return fmt.Sprintf("goMap: %s%s", E.Message, E.trace())
}

// LookupError is returned when a state has no counterpart in a table
// where it should be present.
type LookupError struct {
	deco
	State   []float64
	Message string
}

func (E *LookupError) Error() string {
	return fmt.Sprintf("goMap: %s: %v%s", E.Message, E.State, E.trace())
}

// MappingError is returned for a mapping that can't be applied to a table.
type MappingError struct {
	deco
	Mapping Mapping
	Message string
}

func (E *MappingError) Error() string {
	return fmt.Sprintf("goMap: mapping %v: %s%s", []int(E.Mapping), E.Message, E.trace())
}
