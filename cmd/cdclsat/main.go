// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command cdclsat reads a DIMACS CNF or iCNF instance, solves it, and
// optionally validates and replays the resolution proof through the
// reference TraceCheck visitor.
package main

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/satkit/cdcl"
	"github.com/satkit/cdcl/dimacs"
	"github.com/satkit/cdcl/internal/xo"
	"github.com/satkit/cdcl/proof"
	"github.com/satkit/cdcl/z"
)

var (
	timeout   = flag.Duration("timeout", 30*time.Second, "solve timeout")
	model     = flag.Bool("model", false, "print the satisfying model")
	satcomp   = flag.Bool("satcomp", false, "exit 10/20/0 per SAT competition convention instead of printing a result line")
	stats     = flag.Bool("stats", false, "print solver statistics after solving")
	failed    = flag.Bool("failed", false, "on UNSAT with assumptions, print the failed subset")
	validate  = flag.Bool("validate", false, "on UNSAT, validate the resolution proof")
	tracePath = flag.String("trace", "", "on UNSAT, replay the proof and write a TraceCheck certificate to this path")

	assumptions assumeList
)

func init() {
	flag.Var(&assumptions, "assume", "comma-separated DIMACS literals to assume (repeatable)")
}

type assumeList []z.Lit

func (a *assumeList) String() string {
	return fmt.Sprintf("%+v", []z.Lit(*a))
}

func (a *assumeList) Set(val string) error {
	for _, tok := range strings.Split(val, ",") {
		i, e := strconv.Atoi(tok)
		if e != nil {
			return errors.Wrapf(e, "assume %q", tok)
		}
		if i == 0 {
			return errors.Errorf("zero assumption")
		}
		*a = append(*a, z.Dimacs2Lit(i))
	}
	return nil
}

func (a *assumeList) Type() string {
	return "lits"
}

func main() {
	flag.Parse()
	log := logrus.StandardLogger()

	var r io.Reader
	var e error
	if flag.NArg() == 0 {
		r = os.Stdin
	} else {
		r, e = openPath(flag.Arg(0))
		if e != nil {
			log.WithError(e).Fatal("open input")
		}
	}

	opts := xo.DefaultOptions()
	opts.Valid = *validate || *tracePath != ""
	s, e := cdcl.NewWithOptions(opts)
	if e != nil {
		log.WithError(e).Fatal("build solver options")
	}
	if e := dimacs.ReadCnf(r, s); e != nil {
		log.WithError(e).Fatal("read dimacs")
	}
	if len(assumptions) > 0 {
		s.Assume(assumptions...)
	}

	deadline := time.AfterFunc(*timeout, s.Interrupt)
	res := s.Solve()
	deadline.Stop()

	if *satcomp {
		os.Exit(satcompCode(res))
	}
	printResult(res)
	if res == 1 && *model {
		printModel(s.MaxVar(), s)
	}
	if res == -1 && *failed && len(assumptions) > 0 {
		printFailed(s.Why(nil))
	}
	if res == -1 && (*validate || *tracePath != "") {
		runProofTooling(log, s)
	}
	if *stats {
		st := s.Stats()
		log.WithField("stats", st.String()).Info("solve stats")
	}
}

func runProofTooling(log *logrus.Logger, s *cdcl.Solver) {
	if *validate {
		if !s.Validate() {
			log.Error("proof validation failed")
			os.Exit(1)
		}
		log.Info("proof validated")
	}
	if *tracePath == "" {
		return
	}
	f, e := os.Create(*tracePath)
	if e != nil {
		log.WithError(e).Fatal("create trace file")
	}
	defer f.Close()
	tv := proof.NewTraceVisitor(f)
	s.Replay(tv)
	if e := tv.Flush(); e != nil {
		log.WithError(e).Fatal("flush trace file")
	}
}

func satcompCode(res int) int {
	switch res {
	case 1:
		return 10
	case -1:
		return 20
	default:
		return 0
	}
}

func printResult(res int) {
	switch res {
	case 1:
		fmt.Println("s SATISFIABLE")
	case -1:
		fmt.Println("s UNSATISFIABLE")
	default:
		fmt.Println("s UNKNOWN")
	}
}

func printModel(maxVar z.Var, s *cdcl.Solver) {
	fmt.Print("v")
	for v := z.Var(0); v <= maxVar; v++ {
		m := v.Pos()
		if !s.Value(m) {
			m = v.Neg()
		}
		fmt.Printf(" %d", m.Dimacs())
	}
	fmt.Println(" 0")
}

func printFailed(fs []z.Lit) {
	fmt.Print("f")
	for _, f := range fs {
		fmt.Printf(" %d", f.Dimacs())
	}
	fmt.Println(" 0")
}

func openPath(p string) (io.Reader, error) {
	if p == "-" {
		return os.Stdin, nil
	}
	f, e := os.Open(p)
	if e != nil {
		return nil, errors.Wrapf(e, "open %s", p)
	}
	switch {
	case strings.HasSuffix(p, ".gz"):
		return gzip.NewReader(f)
	case strings.HasSuffix(p, ".bz2"):
		return bzip2.NewReader(f), nil
	default:
		return f, nil
	}
}
