// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clear - delete every node and release the node pool
func (b *base) Clear() {
	deleteNodes(b.root)
	b.root = nil
	b.count = 0

	for p := b.pool; nil != p; {
		next := p.up
		p.up = nil
		p = next
	}
	b.pool = nil
	b.free = 0
}

// internal: post-order disposal of a sub-tree
func deleteNodes(p *Node) {
	if nil == p {
		return
	}
	deleteNodes(p.left)
	deleteNodes(p.right)
	dispose(p)
}
