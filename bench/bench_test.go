// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunSuite(t *testing.T) {
	runs := RunSuite(DefaultConfigs(), DefaultSuite(), 5*time.Second)
	assert.Len(t, runs, len(DefaultConfigs())*len(DefaultSuite()))
	for _, r := range runs {
		assert.NotEqual(t, 0, r.Result, "config %s instance %s should solve within timeout", r.Config.Name, r.Inst.Name)
	}
	solved, unsolved := BySolved(runs)
	assert.Len(t, unsolved, 0)
	assert.Equal(t, len(runs), len(solved))
	assert.Greater(t, TotalDur(runs), time.Duration(0))
}
