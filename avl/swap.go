// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: exchange the positions of two nodes in the tree
//
// only the up/left/right links (and the root if either node is the
// root) are changed; key, value and balance stay with their node
func (b *base) nodeSwap(n1 *Node, n2 *Node) {
	if n1 == n2 || nil == n1 || nil == n2 {
		return
	}

	n1p, n1l, n1r := n1.up, n1.left, n1.right
	n2p, n2l, n2r := n2.up, n2.left, n2.right

	n1IsLeft := nil != n1p && n1 == n1p.left
	n2IsLeft := nil != n2p && n2 == n2p.left

	n1.up, n2.up = n2p, n1p
	n1.left, n2.left = n2l, n1l
	n1.right, n2.right = n2r, n1r

	// adjacent nodes: the plain exchange above made one of them its
	// own parent and the other its own child
	switch {
	case n1r == n2:
		n2.right = n1
		n1.up = n2
	case n2r == n1:
		n1.right = n2
		n2.up = n1
	case n1l == n2:
		n2.left = n1
		n1.up = n2
	case n2l == n1:
		n1.left = n2
		n2.up = n1
	}

	// point the surrounding nodes at the new occupants
	if nil != n1p && n1p != n2 {
		if n1IsLeft {
			n1p.left = n2
		} else {
			n1p.right = n2
		}
	}
	if nil != n1r && n1r != n2 {
		n1r.up = n2
	}
	if nil != n1l && n1l != n2 {
		n1l.up = n2
	}

	if nil != n2p && n2p != n1 {
		if n2IsLeft {
			n2p.left = n1
		} else {
			n2p.right = n1
		}
	}
	if nil != n2r && n2r != n1 {
		n2r.up = n1
	}
	if nil != n2l && n2l != n1 {
		n2l.up = n1
	}

	if b.root == n1 {
		b.root = n2
	} else if b.root == n2 {
		b.root = n1
	}
}
