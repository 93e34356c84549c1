// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/avltree/fault"
)

// operation names
const (
	InsertOperation = "insert"
	DeleteOperation = "delete"
	GetOperation    = "get"
	ClearOperation  = "clear"
)

// Operation - one scripted step
type Operation struct {
	Op    string `gluamapper:"op" json:"op"`
	Key   string `gluamapper:"key" json:"key"`
	Value string `gluamapper:"value" json:"value"`
}

// RandomPhase - insert Count keys drawn from [0, Range) then delete
// the first Delete of them
type RandomPhase struct {
	Count  int   `gluamapper:"count" json:"count"`
	Delete int   `gluamapper:"delete" json:"delete"`
	Range  int   `gluamapper:"range" json:"range"`
	Seed   int64 `gluamapper:"seed" json:"seed"`
}

// Configuration - a complete workload
type Configuration struct {
	Tree       string      `gluamapper:"tree" json:"tree"`
	KeyType    string      `gluamapper:"key_type" json:"key_type"`
	Print      bool        `gluamapper:"print" json:"print"`
	VerifyEach bool        `gluamapper:"verify_each" json:"verify_each"`
	Operations []Operation `gluamapper:"operations" json:"operations"`
	Random     RandomPhase `gluamapper:"random" json:"random"`
}

// Validate - check a configuration before running it
func (c *Configuration) Validate() error {
	switch c.Tree {
	case AVLTreeType, OrderedTreeType:
	default:
		return fault.ErrInvalidTreeType
	}

	switch c.KeyType {
	case StringKeyType, IntegerKeyType:
	default:
		return fault.ErrInvalidKeyType
	}

	for _, op := range c.Operations {
		switch op.Op {
		case InsertOperation, DeleteOperation, GetOperation:
			if _, err := MakeKey(c.KeyType, op.Key); nil != err {
				return err
			}
		case ClearOperation:
		default:
			return fault.ErrInvalidOperation
		}
	}

	r := c.Random
	if r.Count < 0 || r.Delete < 0 || r.Range < 0 || r.Delete > r.Count {
		return fault.ErrInvalidCount
	}
	if r.Count > 0 && 0 == r.Range {
		return fault.ErrInvalidCount
	}
	return nil
}
