// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Result - totals from one run
type Result struct {
	Inserted       int
	Overwritten    int
	Deleted        int
	MissingDeletes int
	Hits           int
	Misses         int
	Clears         int
	Count          int
	Height         int
	Balanced       bool
}

// String - one line summary
func (r Result) String() string {
	return fmt.Sprintf("inserted: %d  overwritten: %d  deleted: %d  missing deletes: %d  hits: %d  misses: %d  clears: %d  count: %d  height: %d  balanced: %t",
		r.Inserted, r.Overwritten, r.Deleted, r.MissingDeletes, r.Hits, r.Misses, r.Clears, r.Count, r.Height, r.Balanced)
}

// Runner - executes workloads
type Runner struct {
	log *logger.L
}

// NewRunner - create a runner logging to the given channel
func NewRunner(log *logger.L) *Runner {
	return &Runner{
		log: log,
	}
}

// state carried through a single run
type run struct {
	log      *logger.L
	dict     Dictionary
	verify   bool
	expected int
	result   Result
}

// Run - apply the scripted operations then the random phase
//
// with VerifyEach set the tree structure is checked after every
// operation, otherwise only once at the end
func (r *Runner) Run(dict Dictionary, cfg *Configuration) (Result, error) {
	if err := cfg.Validate(); nil != err {
		r.log.Errorf("invalid configuration: %s", err)
		return Result{}, err
	}

	rs := &run{
		log:    r.log,
		dict:   dict,
		verify: cfg.VerifyEach,
	}

	r.log.Infof("tree: %s  key type: %s  operations: %d  random: %d",
		cfg.Tree, cfg.KeyType, len(cfg.Operations), cfg.Random.Count)

	for i, op := range cfg.Operations {
		if err := rs.apply(i, cfg.KeyType, op); nil != err {
			return rs.result, err
		}
	}

	if err := rs.random(cfg.KeyType, cfg.Random); nil != err {
		return rs.result, err
	}

	if err := rs.check("final"); nil != err {
		return rs.result, err
	}

	rs.result.Count = dict.Count()
	rs.result.Height = dict.Height()
	rs.result.Balanced = dict.IsBalanced()

	r.log.Infof("result: %s", rs.result)
	return rs.result, nil
}

// apply a single scripted operation
func (rs *run) apply(i int, keyType string, op Operation) error {
	stage := fmt.Sprintf("operation[%d] %s %q", i, op.Op, op.Key)

	if ClearOperation == op.Op {
		rs.log.Debugf("%s", stage)
		rs.dict.Clear()
		rs.expected = 0
		rs.result.Clears += 1
		return rs.step(stage)
	}

	key, err := MakeKey(keyType, op.Key)
	if nil != err {
		rs.log.Errorf("%s: %s", stage, err)
		return err
	}

	switch op.Op {
	case InsertOperation:
		value := op.Value
		if "" == value {
			value = op.Key
		}
		rs.insert(key, value)

	case DeleteOperation:
		rs.delete(key)

	case GetOperation:
		value, err := rs.dict.Get(key)
		if fault.ErrKeyNotFound == err {
			rs.log.Warnf("%s: %s", stage, err)
			rs.result.Misses += 1
		} else if nil != err {
			rs.log.Errorf("%s: %s", stage, err)
			return err
		} else {
			rs.log.Debugf("%s → %v", stage, value)
			rs.result.Hits += 1
		}

	default:
		return fault.ErrInvalidOperation
	}

	return rs.step(stage)
}

// seeded random inserts followed by deletes of the earliest keys
func (rs *run) random(keyType string, phase RandomPhase) error {
	if 0 == phase.Count {
		return nil
	}

	generator := rand.New(rand.NewSource(phase.Seed))
	keys := make([]avl.Item, 0, phase.Count)

	for i := 0; i < phase.Count; i += 1 {
		n := generator.Intn(phase.Range)
		key, err := MakeKey(keyType, strconv.Itoa(n))
		if nil != err {
			return err
		}
		keys = append(keys, key)
		rs.insert(key, n)
		if err := rs.step(fmt.Sprintf("random insert[%d] %v", i, key)); nil != err {
			return err
		}
	}

	for i, key := range keys[:phase.Delete] {
		rs.delete(key)
		if err := rs.step(fmt.Sprintf("random delete[%d] %v", i, key)); nil != err {
			return err
		}
	}
	return nil
}

func (rs *run) insert(key avl.Item, value interface{}) {
	if rs.dict.Insert(key, value) {
		rs.expected += 1
		rs.result.Inserted += 1
		rs.log.Debugf("insert: %v → %v", key, value)
	} else {
		rs.result.Overwritten += 1
		rs.log.Debugf("overwrite: %v → %v", key, value)
	}
}

func (rs *run) delete(key avl.Item) {
	if value := rs.dict.Delete(key); nil != value {
		rs.expected -= 1
		rs.result.Deleted += 1
		rs.log.Debugf("delete: %v was: %v", key, value)
	} else {
		rs.result.MissingDeletes += 1
		rs.log.Debugf("delete: %v missing", key)
	}
}

// verify after an operation only when requested
func (rs *run) step(stage string) error {
	if !rs.verify {
		return nil
	}
	return rs.check(stage)
}

// check the structure of the tree
func (rs *run) check(stage string) error {
	if !rs.dict.CheckUp() {
		rs.log.Errorf("%s: inconsistent parent links", stage)
		return fault.ErrInconsistentTree
	}
	if !rs.dict.CheckOrder() {
		rs.log.Errorf("%s: keys out of order", stage)
		return fault.ErrInconsistentTree
	}
	if bc, ok := rs.dict.(balanceChecker); ok && !bc.CheckBalance() {
		rs.log.Errorf("%s: inconsistent balance factors", stage)
		return fault.ErrInconsistentTree
	}
	if count := rs.dict.Count(); count != rs.expected {
		rs.log.Errorf("%s: count: %d  expected: %d", stage, count, rs.expected)
		return fault.ErrInconsistentTree
	}
	return nil
}
