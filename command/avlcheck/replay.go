// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/workload"
)

// run a workload on a fresh tree and write the outcome
func replay(runner *workload.Runner, cfg *workload.Configuration, w io.Writer) (workload.Result, error) {
	dict, err := workload.NewDictionary(cfg.Tree)
	if nil != err {
		return workload.Result{}, err
	}

	result, err := runner.Run(dict, cfg)

	// show the tree even after a failed check
	if cfg.Print {
		depth := dict.Print(w, true)
		fmt.Fprintf(w, "depth: %d\n", depth)
	}

	if nil != err {
		fmt.Fprintf(w, "failed: %s\n", err)
		return result, err
	}

	fmt.Fprintf(w, "%s: %s\n", cfg.Tree, result)
	return result, nil
}
