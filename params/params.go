/*
 * params.go, part of goMap
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

//Package params reads and validates the parameter file of a goMap run.
//
//The file can be YAML (.yaml or .yml extension) or a plain list of
//"key value" lines, where the key and value can also be separated by
//'=' or ':', and '#' starts a comment:
//
//	input_filename  input.csv
//	output_filename output.csv
//	max_binom       2
package params

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Parameters contains the settings of a run.
type Parameters struct {
	InputFilename  string `yaml:"input_filename" validate:"required"`
	OutputFilename string `yaml:"output_filename" validate:"required,absentfile"`
	//largest number of coordinates kept by the enumerated mappings.
	MaxBinom int `yaml:"max_binom" validate:"required,gte=1"`
}

// Map returns the parameters as a map from their keys to their values.
func (P *Parameters) Map() map[string]any {
	return map[string]any{
		"input_filename":  P.InputFilename,
		"output_filename": P.OutputFilename,
		"max_binom":       P.MaxBinom,
	}
}

// Error is returned for a parameter file that can't be read or is not valid.
type Error struct {
	Filename string
	Message  string
	err      error
}

func (E *Error) Error() string {
	return fmt.Sprintf("goMap/params: %s: %s", E.Filename, E.Message)
}

func (E *Error) Unwrap() error { return E.err }

// Load reads and validates the parameter file name. Unless overwrite is true, it is an
// error for the output file to exist already.
func Load(name string, overwrite bool) (*Parameters, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, &Error{Filename: name, Message: "can't read parameter file", err: err}
	}
	P := new(Parameters)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(P); err != nil {
			return nil, &Error{Filename: name, Message: err.Error(), err: err}
		}
	default:
		if err := parseKeyValue(data, P); err != nil {
			return nil, &Error{Filename: name, Message: err.Error(), err: err}
		}
	}
	if err := newValidator(overwrite).Struct(P); err != nil {
		return nil, &Error{Filename: name, Message: describe(err), err: err}
	}
	return P, nil
}

func parseKeyValue(data []byte, P *Parameters) error {
	s := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for s.Scan() {
		line++
		t := s.Text()
		if i := strings.Index(t, "#"); i >= 0 {
			t = t[:i]
		}
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key, value, ok := cut(t)
		if !ok {
			return fmt.Errorf("line %d: no value given for %q", line, t)
		}
		switch key {
		case "input_filename":
			P.InputFilename = value
		case "output_filename":
			P.OutputFilename = value
		case "max_binom":
			v, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("line %d: max_binom must be an integer: %w", line, err)
			}
			P.MaxBinom = v
		default:
			return fmt.Errorf("line %d: unknown parameter %q", line, key)
		}
	}
	return s.Err()
}

//cut separates a line in a key and a value, using the first '=', ':' or run of whitespace.
func cut(t string) (string, string, bool) {
	i := strings.IndexAny(t, "=: \t")
	if i < 0 {
		return t, "", false
	}
	key := strings.TrimSpace(t[:i])
	value := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(t[i:]), "=:"))
	return key, value, value != ""
}

func newValidator(overwrite bool) *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
	})
	//the error is only returned for empty tags or built-in tags, so it can't happen here.
	_ = v.RegisterValidation("absentfile", func(fl validator.FieldLevel) bool {
		if overwrite {
			return true
		}
		_, err := os.Stat(fl.Field().String())
		return errors.Is(err, os.ErrNotExist)
	})
	return v
}

//describe turns validator errors into a message that names the parameters.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		var m string
		switch fe.Tag() {
		case "required":
			m = fmt.Sprintf("missing parameter %s", fe.Field())
		case "absentfile":
			m = fmt.Sprintf("%s %v already exists", fe.Field(), fe.Value())
		case "gte":
			m = fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
		default:
			m = fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
		}
		msgs = append(msgs, m)
	}
	return strings.Join(msgs, "; ")
}
