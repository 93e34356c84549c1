// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree without any
// rebalancing, returns the value that was stored or nil if the key
// was not in the tree
func (tree *OrderedTree) Delete(key Item) interface{} {
	q := tree.search(key)
	if nil == q {
		return nil
	}
	if nil != q.left && nil != q.right {
		tree.nodeSwap(q, q.left.last())
	}
	value := q.value // preserve the value part
	tree.unlink(q)
	return value
}

// Delete - removes a specific item from the tree and rebalances,
// returns the value that was stored or nil if the key was not in the
// tree
func (tree *Tree) Delete(key Item) interface{} {
	q := tree.search(key)
	if nil == q {
		return nil
	}

	// the balance factor belongs to the position, not the node
	if nil != q.left && nil != q.right {
		r := q.left.last()
		tree.nodeSwap(q, r)
		q.balance, r.balance = r.balance, q.balance
	}

	// q now has at most one child
	p := q.up
	diff := 0
	if nil != p {
		if q == p.left {
			diff = +1 // left branch will shrink
		} else {
			diff = -1 // right branch will shrink
		}
	}

	value := q.value // preserve the value part
	tree.unlink(q)
	tree.removeFix(p, diff)
	return value
}

// internal: detach a node that has at most one child by promoting
// that child (or nil) into its slot, then reclaim the node
func (b *base) unlink(q *Node) {
	child := q.left
	if nil == child {
		child = q.right
	}
	b.relink(q.up, q, child)
	b.count -= 1
	b.freeNode(q)
}

// internal: walk up from n whose sub-tree on the side given by diff
// has shrunk by one
func (tree *Tree) removeFix(n *Node, diff int) {
	for nil != n {

		// n may be replaced by a rotation, so take its position first
		p := n.up
		pDiff := 0
		if nil != p {
			if n == p.left {
				pDiff = +1
			} else {
				pDiff = -1
			}
		}

		balance := n.balance + diff
		switch balance {
		case 0:
			// n has become shorter
			n.balance = 0

		case -1, +1:
			// height of n is unchanged
			n.balance = balance
			return

		case -2:
			c := n.left
			switch c.balance {
			case -1:
				// single LL rotation, sub-tree shorter
				tree.rotateRight(n)
				n.balance = 0
				c.balance = 0
			case 0:
				// single LL rotation, height unchanged
				tree.rotateRight(n)
				n.balance = -1
				c.balance = +1
				return
			case +1:
				// double LR rotation, sub-tree shorter
				x := c.right
				tree.rotateLeft(c)
				tree.rotateRight(n)
				switch x.balance {
				case -1:
					c.balance = 0
					n.balance = +1
				case 0:
					c.balance = 0
					n.balance = 0
				case +1:
					c.balance = -1
					n.balance = 0
				}
				x.balance = 0
			}

		case +2:
			c := n.right
			switch c.balance {
			case +1:
				// single RR rotation, sub-tree shorter
				tree.rotateLeft(n)
				n.balance = 0
				c.balance = 0
			case 0:
				// single RR rotation, height unchanged
				tree.rotateLeft(n)
				n.balance = +1
				c.balance = -1
				return
			case -1:
				// double RL rotation, sub-tree shorter
				x := c.left
				tree.rotateRight(c)
				tree.rotateLeft(n)
				switch x.balance {
				case +1:
					c.balance = 0
					n.balance = -1
				case 0:
					c.balance = 0
					n.balance = 0
				case -1:
					c.balance = +1
					n.balance = 0
				}
				x.balance = 0
			}
		}

		n = p
		diff = pDiff
	}
}
