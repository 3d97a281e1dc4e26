// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/bitgreen/bitgreend/chaincfg"
	"github.com/bitgreen/bitgreend/internal/netparams"
	"github.com/bitgreen/bitgreend/internal/version"
	"github.com/bitgreen/bitgreend/sampleconfig"
	"github.com/decred/dcrd/dcrutil/v4"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "bitgreenparams.conf"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "bitgreenparams.log"
)

var (
	defaultAppDataDir = dcrutil.AppDataDir("bitgreenparams", false)
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultAppDataDir, defaultLogDirname)
)

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not caused
// by the user.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// config defines the configuration options for bitgreenparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	// General application behavior.
	AppDataDir  string `short:"A" long:"appdata" description:"Path to application home directory"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	// Network settings.
	TestNet  bool     `long:"testnet" description:"Use the test network"`
	RegNet   bool     `long:"regtest" description:"Use the regression test network"`
	VBParams []string `long:"vbparams" description:"Override the start time and timeout of a regression test network deployment as name:start:timeout -- may be specified multiple times"`

	// Logging settings.
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir        string `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`

	// Report settings.
	Checkpoints bool `long:"checkpoints" description:"Show the checkpoints of the network"`
	Quorums     bool `long:"quorums" description:"Show the quorums of the network"`
	Deployments bool `long:"deployments" description:"Show the deployments of the network"`
	Dump        bool `long:"dump" description:"Dump every parameter of the network"`

	// The following options are set during configuration processing.
	netName string
}

// IsArgSet returns whether or not the named argument was provided.  It allows
// the config to be used as the argument source of the network parameters.
func (cfg *config) IsArgSet(name string) bool {
	return name == chaincfg.VBParamsArg && len(cfg.VBParams) > 0
}

// GetArgs returns every value of the named argument in the order they were
// provided.
func (cfg *config) GetArgs(name string) []string {
	if name != chaincfg.VBParamsArg {
		return nil
	}
	return cfg.VBParams
}

// cleanAndExpandPath expands environment variables and leading ~ in the passed
// path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Nothing to do when no path is given.
	if path == "" {
		return path
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser to
	// otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if os.PathSeparator == '/' {
		pathSeparators = "/"
	} else {
		pathSeparators = string(os.PathSeparator) + "/"
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// createDefaultConfigFile writes the sample config to the passed path,
// creating its directory as needed.
func createDefaultConfigFile(destPath string) error {
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte(sampleconfig.BitgreenParams()), 0600)
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in bitgreenparams functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.  The selected network is installed as the process-wide network
// once the config is valid.
func loadConfig(appName string, args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		AppDataDir: defaultAppDataDir,
		ConfigFile: defaultConfigFile,
		DebugLevel: defaultLogLevel,
		LogDir:     defaultLogDir,
	}

	// Pre-parse the command line options to see if an alternative config
	// file, the version flag, or the application data directory was
	// specified.  Any errors aside from the help message error can be
	// ignored here since they will be caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, version.String())
		os.Exit(0)
	}

	// Update the home directory if specified.  Since the home directory is
	// updated, other variables need to be updated to reflect the new changes.
	if preCfg.AppDataDir != cfg.AppDataDir {
		cfg.AppDataDir = cleanAndExpandPath(preCfg.AppDataDir)
		if preCfg.ConfigFile == defaultConfigFile {
			preCfg.ConfigFile = filepath.Join(cfg.AppDataDir,
				defaultConfigFilename)
		}
		if preCfg.LogDir == defaultLogDir {
			cfg.LogDir = filepath.Join(cfg.AppDataDir, defaultLogDirname)
		}
	}
	cfg.ConfigFile = cleanAndExpandPath(preCfg.ConfigFile)

	// Write the sample config when the config file in the application data
	// directory does not exist yet.
	defaultCfgFile := filepath.Join(cfg.AppDataDir, defaultConfigFilename)
	if cfg.ConfigFile == defaultCfgFile {
		if _, err := os.Stat(cfg.ConfigFile); os.IsNotExist(err) {
			if err := createDefaultConfigFile(cfg.ConfigFile); err != nil {
				str := fmt.Sprintf("unable to create the default config "+
					"file: %v", err)
				return nil, nil, errSuppressUsage(str)
			}
		}
	}

	// Load additional config from file.
	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(cfg.ConfigFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			str := fmt.Sprintf("error parsing config file: %v", err)
			return nil, nil, errSuppressUsage(str)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	// Multiple networks can't be selected simultaneously.  Count number of
	// network flags passed and assign the active network name.
	numNets := 0
	cfg.netName = chaincfg.MainNetName
	if cfg.TestNet {
		numNets++
		cfg.netName = chaincfg.TestNetName
	}
	if cfg.RegNet {
		numNets++
		cfg.netName = chaincfg.RegNetName
	}
	if numNets > 1 {
		return nil, nil, errors.New("the testnet and regtest params can't " +
			"be used together -- choose one of the two")
	}

	// Deployment overrides are only allowed on the regression test network.
	if len(cfg.VBParams) > 0 && !cfg.RegNet {
		return nil, nil, errors.New("the vbparams option may only be used " +
			"with regtest")
	}

	// Append the network type to the log directory so it is "namespaced" per
	// network in the same fashion as the data directory.
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	cfg.LogDir = filepath.Join(cfg.LogDir, cfg.netName)

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Initialize log rotation.  After log rotation has been initialized, the
	// logger variables may be used.
	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return nil, nil, errSuppressUsage(err.Error())
		}
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, err
	}

	// Build and install the parameters of the selected network.
	if err := netparams.SelectNetwork(cfg.netName, &cfg); err != nil {
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
