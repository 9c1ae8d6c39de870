// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/satkit/cdcl/z"
)

type cnfReader struct {
	rdr     *bufio.Reader
	vis     CnfVis
	vMax    int
	nCls    int
	hdrVars int
	hdrCls  int
	strict  bool
}

func newCnfReader(r io.Reader, vis CnfVis) *cnfReader {
	return &cnfReader{
		rdr:     bufio.NewReader(NewCommentFilter(r)),
		vis:     vis,
		hdrVars: -1,
		hdrCls:  -1,
	}
}

// ReadCnf reads a DIMACS CNF stream, reporting literals and clause
// boundaries to vis. A problem line ("p cnf N M") is optional and, when
// present, is not checked against the actual variable/clause counts.
func ReadCnf(r io.Reader, vis CnfVis) error {
	return ReadCnfStrict(r, vis, false)
}

// ReadCnfStrict is ReadCnf, additionally requiring a problem line whose
// counts match the body exactly.
func ReadCnfStrict(r io.Reader, vis CnfVis, strict bool) error {
	cr := newCnfReader(r, vis)
	cr.strict = strict
	return cr.read()
}

func (r *cnfReader) read() error {
	e := r.readHeader()
	if e != nil {
		if r.strict || e != io.EOF {
			return errors.Wrap(e, "dimacs: reading header")
		}
	}
	if r.strict && (r.hdrVars == -1 || r.hdrCls == -1) {
		return errors.New("dimacs: no problem line and strict mode requested")
	}

	e = r.readBody()
	if e != nil && e != io.EOF {
		return errors.Wrap(e, "dimacs: reading body")
	}
	if r.strict && (r.hdrVars != r.vMax || r.hdrCls != r.nCls) {
		return errors.Errorf("dimacs: header %d vars/%d clauses does not match body %d vars/%d clauses",
			r.hdrVars, r.hdrCls, r.vMax, r.nCls)
	}
	r.vis.Eof()
	return nil
}

func (r *cnfReader) readHeader() error {
	b, e := r.rdr.ReadByte()
	if e != nil {
		return e
	}
	if b == 'p' {
		if e := r.rdr.UnreadByte(); e != nil {
			return e
		}
		return r.readP()
	}
	return r.rdr.UnreadByte()
}

func (r *cnfReader) readP() error {
	if r.hdrVars != -1 {
		return errors.New("dimacs: more than one problem line")
	}
	for _, want := range []byte("p cnf ") {
		b, e := r.rdr.ReadByte()
		if e != nil {
			return e
		}
		if b != want {
			return errors.Errorf("dimacs: problem line: expected %q, got %q", want, b)
		}
	}
	nv, e := readInt(r.rdr)
	if e != nil {
		return e
	}
	nc, e := readInt(r.rdr)
	if e != nil {
		return e
	}
	r.hdrVars, r.hdrCls = nv, nc
	return nil
}

func (r *cnfReader) readBody() error {
	vCap := r.hdrVars
	if vCap < 0 {
		vCap = 8192
	}
	cCap := r.hdrCls
	if cCap < 0 {
		cCap = vCap * 5
	}
	r.vis.Init(vCap, cCap)

	for {
		v, e := readInt(r.rdr)
		if e == io.EOF {
			return nil
		}
		if e != nil {
			return e
		}
		if v == 0 {
			r.vis.Add(z.LitUndef)
			r.nCls++
			continue
		}
		av := v
		if av < 0 {
			av = -av
		}
		if av > r.vMax {
			r.vMax = av
		}
		r.vis.Add(z.Dimacs2Lit(v))
	}
}
