// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench runs a generated suite of CNF instances against one or
// more solver configurations and collects per-instance timing and
// solver statistics, for comparing Options variants (restart policy,
// clause-minimization mode, decay rates) against each other.
package bench

import (
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/satkit/cdcl"
	"github.com/satkit/cdcl/inter"
	"github.com/satkit/cdcl/internal/xo"
)

// Instance is a single generated CNF, built on demand onto a Dest so
// each run gets a fresh copy.
type Instance struct {
	Name  string
	Build func(dst inter.Adder)
}

// Config names a set of solver Options to benchmark.
type Config struct {
	Name string
	Opts xo.Options
}

// InstRun is the outcome of running one Instance under one Config.
type InstRun struct {
	Config Config
	Inst   Instance
	Result int
	Dur    time.Duration
	Stats  xo.Stats
}

// RunSuite runs every instance under every config, each bounded by
// timeout, and returns one InstRun per (config, instance) pair in the
// order configs x instances.
func RunSuite(configs []Config, insts []Instance, timeout time.Duration) []InstRun {
	runs := make([]InstRun, 0, len(configs)*len(insts))
	for _, cfg := range configs {
		for _, inst := range insts {
			runs = append(runs, runOne(cfg, inst, timeout))
		}
	}
	return runs
}

func runOne(cfg Config, inst Instance, timeout time.Duration) InstRun {
	log := logrus.WithFields(logrus.Fields{"config": cfg.Name, "instance": inst.Name})
	s, e := cdcl.NewWithOptions(cfg.Opts)
	if e != nil {
		log.WithError(e).Error("invalid config")
		return InstRun{Config: cfg, Inst: inst, Result: 0}
	}
	inst.Build(s)

	timer := time.AfterFunc(timeout, s.Interrupt)
	start := time.Now()
	res := s.Solve()
	dur := time.Since(start)
	timer.Stop()

	log.WithFields(logrus.Fields{"result": res, "dur": dur}).Debug("instance solved")
	return InstRun{Config: cfg, Inst: inst, Result: res, Dur: dur, Stats: s.Stats()}
}

// BySolved partitions runs into solved (SAT/UNSAT) and unsolved
// (interrupted) groups, for a quick summary of how many instances a
// config finished within the timeout.
func BySolved(runs []InstRun) (solved, unsolved []InstRun) {
	return lo.FilterReject(runs, func(r InstRun, _ int) bool {
		return r.Result != 0
	})
}

// TotalDur sums the wall-clock time a set of runs spent solving.
func TotalDur(runs []InstRun) time.Duration {
	return lo.SumBy(runs, func(r InstRun) time.Duration {
		return r.Dur
	})
}
