// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package dimacs reads and writes DIMACS CNF and iCNF, the plain-text
// formats the solver core exchanges with the outside world. It knows
// nothing about clause storage or search — every format detail is pushed
// through a visitor interface the core (or any other collaborator)
// implements.
package dimacs

import "github.com/satkit/cdcl/z"

// CnfVis is the visitor interface for reading a DIMACS CNF file.
type CnfVis interface {
	// Init is called once a problem line ("p cnf N M") has been parsed,
	// or with conservative defaults if none was present.
	Init(vars, clauses int)

	// Add appends a literal to the clause under construction; z.LitUndef
	// (the text "0") ends the clause.
	Add(m z.Lit)

	// Eof is called once the stream is fully consumed.
	Eof()
}

// ICnfVis is the visitor interface for reading an incremental CNF (iCNF)
// file: a CNF body followed by zero-terminated blocks of "a"-prefixed
// assumption literals.
type ICnfVis interface {
	Add(m z.Lit)
	Assume(m z.Lit)
	Eof()
}
