// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - ordered key/value containers built on a binary search
// tree with parent pointers to allow iteration through the nodes
//
// Two trees share a single node shape:
//
//   OrderedTree - plain unbalanced binary search tree
//   Tree        - AVL height balanced tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node carries a balance factor of height(right)-height(left)
// which the AVL tree maintains incrementally: an insert or delete
// walks upwards from the point of change and stops at the first
// ancestor whose height did not change, or after a rotation that
// restored the height.
//
// Data is associated with each key and is overwritten by an insert
// with the same key.  Delete never copies data between nodes: a node
// with two children is structurally swapped with its in-order
// predecessor before being unlinked, so other nodes keep their
// address and previous nodes can be deleted during iteration.
package avl
