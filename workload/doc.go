// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - replay scripted and random operations against an
// ordered dictionary and verify the tree structure as it changes
//
// a workload is read from a Lua configuration file, it names the tree
// implementation, the key type, an optional list of scripted
// operations and an optional seeded random phase.
package workload
