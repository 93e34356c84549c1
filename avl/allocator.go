// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// allocate a new node, reuses reclaimed nodes if any are available
func (b *base) newNode(key Item, value interface{}, up *Node) *Node {
	p := b.pool
	if nil == p {
		if 0 != b.free {
			panic("avl: node pool corrupt")
		}
		return &Node{
			key:   key,
			value: value,
			up:    up,
		}
	}
	b.pool = p.up
	b.free -= 1

	p.key = key
	p.value = value
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = up // also clears the free list pointer
	return p
}

// reclaim a node and keep it in the pool
func (b *base) freeNode(node *Node) {
	dispose(node)
	node.up = b.pool // use as free list pointer
	b.pool = node
	b.free += 1
}

// drop every reference held by a node
func dispose(node *Node) {
	node.left = nil
	node.right = nil
	node.up = nil
	node.key = nil
	node.value = nil
	node.balance = 0
}
