// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is executed as a Lua chunk and must return a table, which
// is then mapped onto a Go structure using "gluamapper" field tags.
// most of base Lua is available so a workload file can build its
// operation lists with loops or read keys from the environment.
package configuration
