// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckUp - check the up pointers for consistency
func (b *base) CheckUp() bool {
	if nil != b.root && nil != b.root.up {
		return false
	}
	return checkUp(b.root, nil)
}

// internal: consistency checker
func checkUp(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckOrder - check that an in-order walk visits strictly
// increasing keys and reaches every counted node
func (b *base) CheckOrder() bool {
	n := 0
	var previous *Node
	for p := b.First(); nil != p; p = p.Next() {
		if nil != previous && previous.key.Compare(p.key) >= 0 {
			return false
		}
		previous = p
		n += 1
		if n > b.count {
			return false
		}
	}
	return n == b.count
}

// IsBalanced - true if the heights of the two sub-trees of every node
// differ by at most one
//
// heights are recomputed from scratch, so this is O(n)
func (b *base) IsBalanced() bool {
	result := true
	balanceCheck(b.root, &result)
	return result
}

// internal: returns the height of p and clears result on any imbalance
func balanceCheck(p *Node, result *bool) int {
	if nil == p {
		return 0
	}
	left := balanceCheck(p.left, result)
	right := balanceCheck(p.right, result)
	if d := right - left; d < -1 || d > 1 {
		*result = false
	}
	if left > right {
		return left + 1
	}
	return right + 1
}

// Height - number of nodes on the longest path from the root to a leaf
func (b *base) Height() int {
	return height(b.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	left := height(p.left)
	right := height(p.right)
	if left > right {
		return left + 1
	}
	return right + 1
}

// CheckBalance - check every stored balance factor against the actual
// sub-tree heights
func (tree *Tree) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns the height of p and false on the first mismatch
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	left, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	right, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	d := right - left
	if d < -1 || d > 1 || d != p.balance {
		return 0, false
	}
	if left > right {
		return left + 1, true
	}
	return right + 1, true
}
