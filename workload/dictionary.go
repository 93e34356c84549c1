// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"io"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// tree types accepted by the configuration
const (
	AVLTreeType     = "avl"
	OrderedTreeType = "ordered"
)

// Dictionary - the operations a workload needs from a tree
type Dictionary interface {
	Insert(avl.Item, interface{}) bool
	Delete(avl.Item) interface{}
	Get(avl.Item) (interface{}, error)
	Count() int
	Height() int
	IsBalanced() bool
	CheckUp() bool
	CheckOrder() bool
	Clear()
	Print(io.Writer, bool) int
}

// implemented by trees that store balance factors
type balanceChecker interface {
	CheckBalance() bool
}

// NewDictionary - create an empty tree of the given type
func NewDictionary(treeType string) (Dictionary, error) {
	switch treeType {
	case AVLTreeType:
		return avl.New(), nil
	case OrderedTreeType:
		return avl.NewOrdered(), nil
	default:
		return nil, fault.ErrInvalidTreeType
	}
}
