// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (b *base) First() *Node {
	return b.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (b *base) Last() *Node {
	return b.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right != nil {
		return tree.right.first()
	}
	for tree.up != nil && tree.up.right == tree {
		tree = tree.up
	}
	return tree.up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left != nil {
		return tree.left.last()
	}
	for tree.up != nil && tree.up.left == tree {
		tree = tree.up
	}
	return tree.up
}

// Iterator - a position in the in-order sequence of a tree
//
// the zero value is the end position
type Iterator struct {
	node *Node
}

// Begin - iterator at the lowest key
func (b *base) Begin() Iterator {
	return Iterator{node: b.First()}
}

// End - iterator one past the highest key
func (b *base) End() Iterator {
	return Iterator{}
}

// IsEnd - true if the iterator has run past the last node
func (it Iterator) IsEnd() bool {
	return nil == it.node
}

// Node - the current node, nil at the end
func (it Iterator) Node() *Node {
	return it.node
}

// Key - the current key, nil at the end
func (it Iterator) Key() Item {
	if nil == it.node {
		return nil
	}
	return it.node.key
}

// Value - the current value, nil at the end
func (it Iterator) Value() interface{} {
	if nil == it.node {
		return nil
	}
	return it.node.value
}

// Next - advance to the in-order successor
// advancing the end iterator leaves it at the end
func (it Iterator) Next() Iterator {
	if nil == it.node {
		return it
	}
	return Iterator{node: it.node.Next()}
}

// Equal - true if both iterators are at the same node, or both at the end
func (it Iterator) Equal(other Iterator) bool {
	return it.node == other.node
}
