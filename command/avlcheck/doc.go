// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Workload checker for the avl package
//
// This program reads a Lua workload file, replays its operations
// against a balanced or an ordered tree, verifies the tree structure
// and prints a summary.  With --watch the workload is replayed each
// time the file is written.
//
// a minimal workload file:
//
//   return {
//       workload = {
//           tree = "avl",
//           key_type = "integer",
//           print = true,
//           operations = {
//               { op = "insert", key = "10", value = "ten" },
//               { op = "get", key = "10" },
//               { op = "delete", key = "10" },
//           },
//           random = { count = 1000, delete = 500, range = 5000, seed = 1 },
//       },
//       logging = {
//           directory = "log",
//           file = "avlcheck.log",
//           levels = { DEFAULT = "info" },
//       },
//   }
package main
