// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
	"github.com/bitmark-inc/avltree/workload/mocks"
)

var _ workload.Dictionary = (*mocks.MockDictionary)(nil)

// structural checks the runner makes after a step
func expectCheck(m *mocks.MockDictionary, count int) []*gomock.Call {
	return []*gomock.Call{
		m.EXPECT().CheckUp().Return(true),
		m.EXPECT().CheckOrder().Return(true),
		m.EXPECT().Count().Return(count),
	}
}

func TestRunScriptedSequence(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockDictionary(ctl)

	cfg := &workload.Configuration{
		Tree:       workload.AVLTreeType,
		KeyType:    workload.StringKeyType,
		VerifyEach: true,
		Operations: []workload.Operation{
			{Op: workload.InsertOperation, Key: "a", Value: "1"},
			{Op: workload.GetOperation, Key: "a"},
			{Op: workload.GetOperation, Key: "b"},
			{Op: workload.DeleteOperation, Key: "a"},
			{Op: workload.DeleteOperation, Key: "b"},
		},
	}

	calls := []*gomock.Call{
		m.EXPECT().Insert(workload.StringKey("a"), "1").Return(true),
	}
	calls = append(calls, expectCheck(m, 1)...)
	calls = append(calls, m.EXPECT().Get(workload.StringKey("a")).Return("1", nil))
	calls = append(calls, expectCheck(m, 1)...)
	calls = append(calls, m.EXPECT().Get(workload.StringKey("b")).Return(nil, fault.ErrKeyNotFound))
	calls = append(calls, expectCheck(m, 1)...)
	calls = append(calls, m.EXPECT().Delete(workload.StringKey("a")).Return("1"))
	calls = append(calls, expectCheck(m, 0)...)
	calls = append(calls, m.EXPECT().Delete(workload.StringKey("b")).Return(nil))
	calls = append(calls, expectCheck(m, 0)...)
	calls = append(calls, expectCheck(m, 0)...) // final
	calls = append(calls,
		m.EXPECT().Count().Return(0),
		m.EXPECT().Height().Return(0),
		m.EXPECT().IsBalanced().Return(true),
	)
	gomock.InOrder(calls...)

	r := workload.NewRunner(logger.New(category))
	result, err := r.Run(m, cfg)
	assert.Nil(t, err, "run error")
	assert.Equal(t, workload.Result{
		Inserted:       1,
		Deleted:        1,
		MissingDeletes: 1,
		Hits:           1,
		Misses:         1,
		Balanced:       true,
	}, result, "wrong result")
}

func TestRunInsertUsesKeyAsDefaultValue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockDictionary(ctl)

	cfg := &workload.Configuration{
		Tree:    workload.OrderedTreeType,
		KeyType: workload.IntegerKeyType,
		Operations: []workload.Operation{
			{Op: workload.InsertOperation, Key: "7"},
			{Op: workload.InsertOperation, Key: "7", Value: "seven"},
		},
	}

	gomock.InOrder(
		m.EXPECT().Insert(workload.IntKey(7), "7").Return(true),
		m.EXPECT().Insert(workload.IntKey(7), "seven").Return(false),
		m.EXPECT().CheckUp().Return(true),
		m.EXPECT().CheckOrder().Return(true),
		m.EXPECT().Count().Return(1),
		m.EXPECT().Count().Return(1),
		m.EXPECT().Height().Return(1),
		m.EXPECT().IsBalanced().Return(true),
	)

	r := workload.NewRunner(logger.New(category))
	result, err := r.Run(m, cfg)
	assert.Nil(t, err, "run error")
	assert.Equal(t, 1, result.Inserted, "wrong inserted")
	assert.Equal(t, 1, result.Overwritten, "wrong overwritten")
	assert.Equal(t, 1, result.Count, "wrong count")
}

func TestRunDetectsInconsistentTree(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockDictionary(ctl)

	cfg := &workload.Configuration{
		Tree:       workload.AVLTreeType,
		KeyType:    workload.StringKeyType,
		VerifyEach: true,
		Operations: []workload.Operation{
			{Op: workload.InsertOperation, Key: "a"},
			{Op: workload.InsertOperation, Key: "b"},
		},
	}

	gomock.InOrder(
		m.EXPECT().Insert(workload.StringKey("a"), "a").Return(true),
		m.EXPECT().CheckUp().Return(true),
		m.EXPECT().CheckOrder().Return(false),
	)

	r := workload.NewRunner(logger.New(category))
	result, err := r.Run(m, cfg)
	assert.Equal(t, fault.ErrInconsistentTree, err, "wrong error")
	assert.Equal(t, 1, result.Inserted, "wrong inserted")
}

func TestRunDetectsCountMismatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockDictionary(ctl)

	cfg := &workload.Configuration{
		Tree:    workload.AVLTreeType,
		KeyType: workload.StringKeyType,
		Operations: []workload.Operation{
			{Op: workload.InsertOperation, Key: "a"},
		},
	}

	gomock.InOrder(
		m.EXPECT().Insert(workload.StringKey("a"), "a").Return(true),
		m.EXPECT().CheckUp().Return(true),
		m.EXPECT().CheckOrder().Return(true),
		m.EXPECT().Count().Return(2),
	)

	r := workload.NewRunner(logger.New(category))
	_, err := r.Run(m, cfg)
	assert.Equal(t, fault.ErrInconsistentTree, err, "wrong error")
}

func TestRunRejectsInvalidConfiguration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockDictionary(ctl)

	cfg := &workload.Configuration{
		Tree:    workload.AVLTreeType,
		KeyType: workload.IntegerKeyType,
		Operations: []workload.Operation{
			{Op: workload.InsertOperation, Key: "one"},
		},
	}

	r := workload.NewRunner(logger.New(category))
	_, err := r.Run(m, cfg)
	assert.Equal(t, fault.ErrInvalidKey, err, "wrong error")
}

func TestRunScriptedOnTrees(t *testing.T) {
	cfg := &workload.Configuration{
		KeyType:    workload.IntegerKeyType,
		VerifyEach: true,
		Operations: []workload.Operation{
			{Op: workload.InsertOperation, Key: "10"},
			{Op: workload.InsertOperation, Key: "20"},
			{Op: workload.InsertOperation, Key: "30"},
			{Op: workload.GetOperation, Key: "20"},
			{Op: workload.GetOperation, Key: "40"},
			{Op: workload.DeleteOperation, Key: "10"},
			{Op: workload.DeleteOperation, Key: "99"},
			{Op: workload.ClearOperation},
			{Op: workload.InsertOperation, Key: "5", Value: "five"},
		},
	}

	for _, treeType := range []string{workload.AVLTreeType, workload.OrderedTreeType} {
		cfg.Tree = treeType
		dict, err := workload.NewDictionary(treeType)
		assert.Nil(t, err, "%s: dictionary error", treeType)

		r := workload.NewRunner(logger.New(category))
		result, err := r.Run(dict, cfg)
		assert.Nil(t, err, "%s: run error", treeType)
		assert.Equal(t, workload.Result{
			Inserted:       4,
			Deleted:        1,
			MissingDeletes: 1,
			Hits:           1,
			Misses:         1,
			Clears:         1,
			Count:          1,
			Height:         1,
			Balanced:       true,
		}, result, "%s: wrong result", treeType)

		value, err := dict.Get(workload.IntKey(5))
		assert.Nil(t, err, "%s: get error", treeType)
		assert.Equal(t, "five", value, "%s: wrong value", treeType)
	}
}

func TestRunRandomOnTrees(t *testing.T) {
	for _, treeType := range []string{workload.AVLTreeType, workload.OrderedTreeType} {
		for _, keyType := range []string{workload.IntegerKeyType, workload.StringKeyType} {
			cfg := &workload.Configuration{
				Tree:       treeType,
				KeyType:    keyType,
				VerifyEach: true,
				Random: workload.RandomPhase{
					Count:  500,
					Delete: 200,
					Range:  1000,
					Seed:   7,
				},
			}

			dict, _ := workload.NewDictionary(treeType)
			r := workload.NewRunner(logger.New(category))
			result, err := r.Run(dict, cfg)
			assert.Nil(t, err, "%s/%s: run error", treeType, keyType)

			assert.Equal(t, 500, result.Inserted+result.Overwritten, "%s/%s: wrong insert total", treeType, keyType)
			assert.Equal(t, 200, result.Deleted+result.MissingDeletes, "%s/%s: wrong delete total", treeType, keyType)
			assert.Equal(t, result.Inserted-result.Deleted, result.Count, "%s/%s: wrong count", treeType, keyType)
			assert.Equal(t, dict.Count(), result.Count, "%s/%s: count differs from tree", treeType, keyType)
			if workload.AVLTreeType == treeType {
				assert.True(t, result.Balanced, "%s/%s: not balanced", treeType, keyType)
			}

			// same seed, same result
			again, _ := workload.NewDictionary(treeType)
			repeat, err := r.Run(again, cfg)
			assert.Nil(t, err, "%s/%s: repeat error", treeType, keyType)
			assert.Equal(t, result, repeat, "%s/%s: not deterministic", treeType, keyType)
		}
	}
}
