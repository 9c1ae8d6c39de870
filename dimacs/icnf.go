// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/satkit/cdcl/z"
)

type iCnfReader struct {
	rdr *bufio.Reader
	vis ICnfVis
}

// ReadICnf reads an iCNF stream: a CNF body followed by zero-terminated
// blocks of "a"-prefixed assumption literals, the format used to drive a
// sequence of incremental Solve calls from a single file.
func ReadICnf(r io.Reader, vis ICnfVis) error {
	ir := &iCnfReader{rdr: bufio.NewReader(NewCommentFilter(r)), vis: vis}
	return ir.read()
}

func (r *iCnfReader) read() error {
	if e := r.readP(); e != nil {
		return errors.Wrap(e, "dimacs: reading icnf problem line")
	}
	assuming := false
	for {
		c, e := r.rdr.ReadByte()
		if e == io.EOF {
			r.vis.Eof()
			return nil
		}
		if e != nil {
			return errors.Wrap(e, "dimacs: reading icnf body")
		}
		if c == 'a' {
			assuming = true
		} else if e := r.rdr.UnreadByte(); e != nil {
			return e
		}
		m, e := readLit(r.rdr)
		if e != nil {
			return errors.Wrap(e, "dimacs: reading icnf literal")
		}
		if assuming {
			r.vis.Assume(m)
		} else {
			r.vis.Add(m)
		}
		if m == z.LitUndef {
			assuming = false
		}
	}
}

func (r *iCnfReader) readP() error {
	want := []byte("p inccnf\n")
	for _, b := range want {
		got, e := r.rdr.ReadByte()
		if e != nil {
			return e
		}
		if got != b {
			return errors.Errorf("icnf: expected %q, got %q", b, got)
		}
	}
	return nil
}
