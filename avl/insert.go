// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree without any rebalancing
// returns true if a node was added, false if an existing value was
// overwritten
func (tree *OrderedTree) Insert(key Item, value interface{}) bool {
	_, added := tree.insert(key, value)
	return added
}

// Insert - insert a new node into the tree and rebalance
// returns true if a node was added, false if an existing value was
// overwritten
func (tree *Tree) Insert(key Item, value interface{}) bool {
	n, added := tree.insert(key, value)
	if added {
		tree.insertFix(n.up, n)
	}
	return added
}

// internal: structural insert, descend from the root and link a new
// node into the first empty slot, or overwrite the value of an
// existing key in place
func (b *base) insert(key Item, value interface{}) (*Node, bool) {
	if nil == b.root {
		b.root = b.newNode(key, value, nil)
		b.count += 1
		return b.root, true
	}

	p := b.root
	for {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			if nil == p.left {
				p.left = b.newNode(key, value, p)
				b.count += 1
				return p.left, true
			}
			p = p.left
		case c < 0: // p.key < key
			if nil == p.right {
				p.right = b.newNode(key, value, p)
				b.count += 1
				return p.right, true
			}
			p = p.right
		default:
			p.value = value
			return p, false
		}
	}
}

// internal: walk up from the parent p of a grown sub-tree n
func (tree *Tree) insertFix(p *Node, n *Node) {
	for nil != p {
		if n == p.left {
			p.balance -= 1
		} else {
			p.balance += 1
		}

		switch p.balance {
		case 0:
			// height of p is unchanged
			return

		case -1, +1:
			// p has grown by one, continue upwards
			n = p
			p = p.up
			continue

		case -2:
			if -1 == n.balance {
				// single LL rotation
				tree.rotateRight(p)
				p.balance = 0
				n.balance = 0
			} else {
				// double LR rotation
				x := n.right
				tree.rotateLeft(n)
				tree.rotateRight(p)
				switch x.balance {
				case -1:
					n.balance = 0
					p.balance = +1
				case 0:
					n.balance = 0
					p.balance = 0
				case +1:
					n.balance = -1
					p.balance = 0
				}
				x.balance = 0
			}

		case +2:
			if +1 == n.balance {
				// single RR rotation
				tree.rotateLeft(p)
				p.balance = 0
				n.balance = 0
			} else {
				// double RL rotation
				x := n.left
				tree.rotateRight(n)
				tree.rotateLeft(p)
				switch x.balance {
				case +1:
					n.balance = 0
					p.balance = -1
				case 0:
					n.balance = 0
					p.balance = 0
				case -1:
					n.balance = +1
					p.balance = 0
				}
				x.balance = 0
			}
		}

		// a rotation restores the height the sub-tree had before the insert
		return
	}
}
