// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// state and read-only operations shared by both kinds of tree
type base struct {
	root  *Node
	count int
	pool  *Node // linked list of reclaimed nodes
	free  int   // number of nodes in the pool
}

// OrderedTree - an unbalanced binary search tree
type OrderedTree struct {
	base
}

// Tree - an AVL height balanced binary search tree
type Tree struct {
	base
}

// NewOrdered - create an initially empty unbalanced tree
func NewOrdered() *OrderedTree {
	return &OrderedTree{}
}

// New - create an initially empty balanced tree
func New() *Tree {
	return &Tree{}
}

// IsEmpty - true if tree contains no data
func (b *base) IsEmpty() bool {
	return nil == b.root
}

// Count - number of nodes currently in the tree
func (b *base) Count() int {
	return b.count
}

// Root - return the root node of the tree
func (b *base) Root() *Node {
	return b.root
}

// internal: make n occupy the slot that old had below parent,
// a nil parent means the slot is the root
func (b *base) relink(parent *Node, old *Node, n *Node) {
	if nil == parent {
		b.root = n
	} else if parent.left == old {
		parent.left = n
	} else {
		parent.right = n
	}
	if nil != n {
		n.up = parent
	}
}
