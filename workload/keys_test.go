// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

func TestMakeKey(t *testing.T) {
	items := []struct {
		keyType string
		text    string
		key     interface{}
		err     error
	}{
		{workload.StringKeyType, "abc", workload.StringKey("abc"), nil},
		{workload.StringKeyType, "", nil, fault.ErrInvalidKey},
		{workload.IntegerKeyType, "42", workload.IntKey(42), nil},
		{workload.IntegerKeyType, " -7 ", workload.IntKey(-7), nil},
		{workload.IntegerKeyType, "4x", nil, fault.ErrInvalidKey},
		{"float", "1.5", nil, fault.ErrInvalidKeyType},
	}

	for i, item := range items {
		key, err := workload.MakeKey(item.keyType, item.text)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		if nil == item.err {
			assert.Equal(t, item.key, key, "%d: wrong key", i)
		}
	}
}

func TestKeyCompare(t *testing.T) {
	assert.True(t, workload.StringKey("a").Compare(workload.StringKey("b")) < 0, "a < b")
	assert.True(t, workload.StringKey("b").Compare(workload.StringKey("a")) > 0, "b > a")
	assert.Equal(t, 0, workload.StringKey("a").Compare(workload.StringKey("a")), "a == a")

	// numeric, not lexical
	assert.True(t, workload.IntKey(9).Compare(workload.IntKey(10)) < 0, "9 < 10")
	assert.True(t, workload.IntKey(10).Compare(workload.IntKey(9)) > 0, "10 > 9")
	assert.Equal(t, 0, workload.IntKey(-3).Compare(workload.IntKey(-3)), "-3 == -3")

	assert.Equal(t, "12", workload.IntKey(12).String(), "wrong text")
	assert.Equal(t, "x", workload.StringKey("x").String(), "wrong text")
}
