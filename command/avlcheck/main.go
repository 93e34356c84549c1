// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	workloadLoggerPrefix = "workload"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--watch] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: %s, %d were detected", program, fault.ErrRequiredConfigFile, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0
	watch := len(options["watch"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if err := os.MkdirAll(masterConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, masterConfiguration.Logging.Directory, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %+v", masterConfiguration)

	if verbose {
		fmt.Printf("configuration: %s\n", configurationFile)
		fmt.Printf("tree: %s  key type: %s  operations: %d  random: %d\n",
			masterConfiguration.Workload.Tree,
			masterConfiguration.Workload.KeyType,
			len(masterConfiguration.Workload.Operations),
			masterConfiguration.Workload.Random.Count,
		)
	}

	runner := workload.NewRunner(logger.New(workloadLoggerPrefix))

	_, err = replay(runner, &masterConfiguration.Workload, os.Stdout)
	if nil != err && !watch {
		log.Errorf("workload failed: %s", err)
		exitwithstatus.Message("%s: workload failed with error: %s", program, err)
	}

	if !watch {
		return
	}

	channels := newWatcherChannel()
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), channels)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	defer watcher.Close()

	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}

	if verbose {
		fmt.Printf("watching: %s  (CTRL-C to stop)\n", configurationFile)
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-channels.change:
			// logging changes need a restart, only the workload is reloaded
			c, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("reload: %q  error: %s", configurationFile, err)
				fmt.Printf("reload failed: %s\n", err)
				continue
			}
			log.Infof("reload: %q", configurationFile)
			if _, err := replay(runner, &c.Workload, os.Stdout); nil != err {
				log.Errorf("workload failed: %s", err)
			}

		case <-channels.remove:
			log.Warnf("configuration file: %q removed", configurationFile)
			return

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if verbose {
				fmt.Printf("\nreceived signal: %v\n", sig)
			}
			return
		}
	}
}
