/*
 * compress.go, part of goMap
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

package tableio

import (
	"bufio"
	"compress/lzw"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	lzwLitwidth int = 8
	level       int = 9 //deflate and gzip compression level
)

// Compression identifies how a file is compressed.
type Compression int

const (
	None Compression = iota
	Zstd
	Gzip
	Deflate
	LZW
)

// Split returns the compression of the file name, given by its last extension, and the name
// without the compression extension. Files with no known compression extension are
// assumed to be uncompressed.
func Split(name string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(name, filepath.Ext(name))
	switch ext {
	case ".zst", ".zstd":
		return Zstd, base
	case ".gz":
		return Gzip, base
	case ".zz", ".deflate":
		return Deflate, base
	case ".lzw":
		return LZW, base
	}
	return None, name
}

//multiCloser reads or writes through one of its fields, and on Close closes all
//its closers, in order, returning the first error.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (M *multiCloser) Close() error {
	var err error
	for _, c := range M.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// NewReader returns a reader that decompresses r according to c.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case Gzip:
		return gzip.NewReader(r)
	case Deflate:
		return flate.NewReader(r), nil
	case LZW:
		return lzw.NewReader(r, lzw.MSB, lzwLitwidth), nil
	}
	return io.NopCloser(r), nil
}

// NewWriter returns a writer that compresses into w according to c.
// The returned writer must be closed to flush the compressed stream.
// Closing it does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case Gzip:
		return gzip.NewWriterLevel(w, level)
	case Deflate:
		return flate.NewWriter(w, level)
	case LZW:
		return lzw.NewWriter(w, lzw.MSB, lzwLitwidth), nil
	}
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Open opens the file name for reading, decompressing it if its extension
// indicates a compression format. Closing the returned reader closes the file.
func Open(name string) (io.ReadCloser, error) {
	c, _ := Split(name)
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	d, err := NewReader(bufio.NewReader(f), c)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &multiCloser{Reader: d, closers: []io.Closer{d, f}}, nil
}

// Create creates the file name, compressing what is written to it if its
// extension indicates a compression format. The returned writer must be closed.
func Create(name string) (io.WriteCloser, error) {
	c, _ := Split(name)
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	b := bufio.NewWriter(f)
	e, err := NewWriter(b, c)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &multiCloser{Writer: e, closers: []io.Closer{e, flusher{b}, f}}, nil
}

type flusher struct{ *bufio.Writer }

func (F flusher) Close() error { return F.Flush() }
