// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Search - find a specific item, nil if not found
func (b *base) Search(key Item) *Node {
	return b.search(key)
}

// Find - iterator positioned at a specific item or End() if not found
func (b *base) Find(key Item) Iterator {
	return Iterator{node: b.search(key)}
}

// Get - the value stored for a key
func (b *base) Get(key Item) (interface{}, error) {
	p := b.search(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Set - overwrite the value of a key that is already in the tree
func (b *base) Set(key Item, value interface{}) error {
	p := b.search(key)
	if nil == p {
		return fault.ErrKeyNotFound
	}
	p.value = value
	return nil
}

func (b *base) search(key Item) *Node {
	p := b.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
