// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command bitgreenparams selects a BitGreen network and prints its consensus
// parameters.
//
// The parameters of the selected network are built and validated exactly as a
// node builds them at startup, so the command also serves to check the
// deployment overrides of a regression test network before using them.
//
// Usage:
//
//	bitgreenparams [OPTIONS]
//
// Run bitgreenparams -h for the list of options.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bitgreen/bitgreend/internal/netparams"
	"github.com/bitgreen/bitgreend/internal/version"
	flags "github.com/jessevdk/go-flags"
)

// bitgreenparamsMain is the real main function for bitgreenparams.  It is
// necessary to work around the fact that deferred functions do not run when
// os.Exit() is called.
func bitgreenparamsMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and selects the network.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	cfg, _, err := loadConfig(appName, os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			return nil
		}
		usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
		fmt.Fprintln(os.Stderr, err)
		var es errSuppressUsage
		if !errors.As(err, &es) {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Show version and home dir at startup.
	bgpmLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	bgpmLog.Infof("Home dir: %s", cfg.AppDataDir)
	if cfg.NoFileLogging {
		bgpmLog.Info("File logging disabled")
	}

	params := netparams.ActiveParams()
	if err := params.CheckGenesisProofOfWork(); err != nil {
		bgpmLog.Errorf("Invalid genesis block: %v", err)
		return err
	}
	if err := writeReport(os.Stdout, cfg, params); err != nil {
		bgpmLog.Errorf("Unable to write report: %v", err)
		return err
	}
	return nil
}

func main() {
	if err := bitgreenparamsMain(); err != nil {
		os.Exit(1)
	}
}
