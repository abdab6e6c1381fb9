/*
 * dump.go, part of goasd.
 *
 * Copyright 2026 The goasd authors.
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

package rdm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	asd "github.com/rmera/goasd"
)

//The dump format is plain text, compressed with z-standard (zstd).
//The first line is "** <order> <norb>", and each following line contains
//the 2N indexes of a non-zero element and its value.

const dumpMark = "**"

//Write writes a zstd-compressed dump of R to w. Elements with an absolute
//value not larger than the optional threshold are omitted.
func (R *RDM) Write(w io.Writer, threshold ...float64) (err error) {
	thr := 0.0
	if len(threshold) > 0 {
		thr = threshold[0]
	}
	z, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return asd.ErrDecorate(err, "rdm.Write")
	}
	defer func() {
		if cerr := z.Close(); err == nil && cerr != nil {
			err = asd.ErrDecorate(cerr, "rdm.Write")
		}
	}()
	b := bufio.NewWriter(z)
	fmt.Fprintf(b, "%s %d %d\n", dumpMark, R.n, R.norb)
	d := R.t.Data()
	var line strings.Builder
	R.walk(func(off int, idx []int) {
		v := d[off]
		if v == 0 || (v <= thr && v >= -thr) {
			return
		}
		line.Reset()
		for _, i := range idx {
			line.WriteString(strconv.Itoa(i))
			line.WriteByte(' ')
		}
		line.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		line.WriteByte('\n')
		b.WriteString(line.String())
	})
	if err = b.Flush(); err != nil {
		return asd.ErrDecorate(err, "rdm.Write")
	}
	return nil
}

//Read reads an RDM dump, as written by Write, from r.
func Read(r io.Reader) (*RDM, error) {
	z, err := zstd.NewReader(r)
	if err != nil {
		return nil, asd.ErrDecorate(err, "rdm.Read")
	}
	defer z.Close()
	s := bufio.NewScanner(z)
	if !s.Scan() {
		return nil, asd.NewError(fmt.Sprintf("missing RDM header: %v", s.Err()), "rdm.Read")
	}
	head := strings.Fields(s.Text())
	if len(head) != 3 || head[0] != dumpMark {
		return nil, asd.NewError(fmt.Sprintf("malformed RDM header '%s'", s.Text()), "rdm.Read")
	}
	n, err1 := strconv.Atoi(head[1])
	norb, err2 := strconv.Atoi(head[2])
	if err1 != nil || err2 != nil || n < 1 || norb < 0 {
		return nil, asd.NewError(fmt.Sprintf("malformed RDM header '%s'", s.Text()), "rdm.Read")
	}
	R := New(n, norb)
	idx := make([]int, 2*n)
	for lineno := 2; s.Scan(); lineno++ {
		f := strings.Fields(s.Text())
		if len(f) == 0 {
			continue
		}
		if len(f) != 2*n+1 {
			return nil, asd.NewError(fmt.Sprintf("line %d: expected %d fields, got %d", lineno, 2*n+1, len(f)), "rdm.Read")
		}
		for i := range idx {
			idx[i], err = strconv.Atoi(f[i])
			if err != nil || idx[i] < 0 || idx[i] >= norb {
				return nil, asd.NewError(fmt.Sprintf("line %d: invalid index '%s'", lineno, f[i]), "rdm.Read")
			}
		}
		v, err := strconv.ParseFloat(f[2*n], 64)
		if err != nil {
			return nil, asd.NewError(fmt.Sprintf("line %d: invalid value '%s'", lineno, f[2*n]), "rdm.Read")
		}
		R.t.Set(v, idx...)
	}
	if err := s.Err(); err != nil {
		return nil, asd.ErrDecorate(err, "rdm.Read")
	}
	return R, nil
}

//WriteFile dumps R to the file name, which is created or truncated.
func (R *RDM) WriteFile(name string, threshold ...float64) error {
	f, err := os.Create(name)
	if err != nil {
		return asd.ErrDecorate(err, "rdm.WriteFile")
	}
	if err := R.Write(f, threshold...); err != nil {
		f.Close()
		return asd.ErrDecorate(err, "rdm.WriteFile")
	}
	return f.Close()
}

//ReadFile reads an RDM dump from the file name.
func ReadFile(name string) (*RDM, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, asd.ErrDecorate(err, "rdm.ReadFile")
	}
	defer f.Close()
	R, err := Read(f)
	if err != nil {
		return nil, asd.ErrDecorate(err, "rdm.ReadFile")
	}
	return R, nil
}
