// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// key types accepted by the configuration
const (
	StringKeyType  = "string"
	IntegerKeyType = "integer"
)

// StringKey - lexically ordered key
type StringKey string

// Compare - implements avl.Item
func (k StringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(StringKey)))
}

// String - for printing
func (k StringKey) String() string {
	return string(k)
}

// IntKey - numerically ordered key
type IntKey int

// Compare - implements avl.Item
func (k IntKey) Compare(x interface{}) int {
	other := x.(IntKey)
	switch {
	case k < other:
		return -1
	case k > other:
		return 1
	default:
		return 0
	}
}

// String - for printing
func (k IntKey) String() string {
	return strconv.Itoa(int(k))
}

// MakeKey - convert the text of a key to the configured key type
func MakeKey(keyType string, text string) (avl.Item, error) {
	switch keyType {
	case StringKeyType:
		if "" == text {
			return nil, fault.ErrInvalidKey
		}
		return StringKey(text), nil

	case IntegerKeyType:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		return IntKey(n), nil

	default:
		return nil, fault.ErrInvalidKeyType
	}
}
