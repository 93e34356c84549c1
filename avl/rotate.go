// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: promote the right child y of x into the position of x
//
//       x                y
//      / \              / \
//     a   y     →      x   c
//        / \          / \
//       b   c        a   b
//
// balance factors are the caller's responsibility
func (tree *Tree) rotateLeft(x *Node) {
	y := x.right
	b := y.left

	tree.relink(x.up, x, y)

	y.left = x
	x.up = y

	x.right = b
	if nil != b {
		b.up = x
	}
}

// internal: promote the left child y of x into the position of x
//
//         x            y
//        / \          / \
//       y   c   →    a   x
//      / \              / \
//     a   b            b   c
//
// balance factors are the caller's responsibility
func (tree *Tree) rotateRight(x *Node) {
	y := x.left
	b := y.right

	tree.relink(x.up, x, y)

	y.right = x
	x.up = y

	x.left = b
	if nil != b {
		b.up = x
	}
}
