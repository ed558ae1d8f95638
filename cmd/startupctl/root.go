package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/startupkit/internal/config"
	"github.com/joshuapare/startupkit/internal/logger"
	"github.com/joshuapare/startupkit/internal/regview"
	"github.com/joshuapare/startupkit/internal/skiplist"
	"github.com/joshuapare/startupkit/internal/sysinfo"
	"github.com/joshuapare/startupkit/pkg/startup"
	"github.com/joshuapare/startupkit/pkg/types"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	logOn   bool

	// Target flags. Empty values fall back to the config file.
	hostFlag     string
	storeFlag    string
	startService bool
	skipFlag     string
	skipFile     string
	configPath   string
)

// Registry access, replaced in tests.
var (
	backend  regview.Backend  = regview.Native()
	services regview.Services = regview.NativeServices()
	identity                  = sysinfo.Current
)

var rootCmd = &cobra.Command{
	Use:   "startupctl",
	Short: "Manage Windows Run-key startup entries",
	Long: `startupctl lists, adds and removes the programs Windows starts at logon
from the Run key, on the local machine or on a remote host through the
Remote Registry service. Entries from the 32-bit and 64-bit registry views
are merged, with the 32-bit view taking precedence.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logOn, "log", false, "Write a JSON log file under ~/.startupctl/logs")

	rootCmd.PersistentFlags().StringVarP(&hostFlag, "host", "H", "", "Target machine (default: local machine)")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Registry store: machine (HKLM) or user (HKCU)")
	rootCmd.PersistentFlags().
		BoolVar(&startService, "start-service", false, "Start the Remote Registry service on the target if it is stopped")
	rootCmd.PersistentFlags().StringVar(&skipFlag, "skip", "", "Entries to hide: none, default, file, default+file")
	rootCmd.PersistentFlags().StringVar(&skipFile, "skip-file", "", "Skip list file, one name per line")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (.yaml or .toml); also read from $"+config.EnvVar)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error kinds to process exit codes.
func exitCode(err error) int {
	if errors.Is(err, errUserMismatch) {
		return 3
	}
	kind, ok := types.KindOf(err)
	if !ok {
		return 1
	}
	switch kind {
	case types.ErrKindArgument:
		return 2
	case types.ErrKindAccess, types.ErrKindPermission:
		return 4
	case types.ErrKindNotFound:
		return 5
	default:
		return 1
	}
}

// settings merges the config file with the command-line flags. Flags win.
func settings() (*config.Config, error) {
	cfg := config.Default()
	if path := config.Path(configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if hostFlag != "" {
		cfg.Host = hostFlag
	}
	if storeFlag != "" {
		cfg.Store = storeFlag
	}
	if startService {
		cfg.StartService = true
	}
	if skipFlag != "" {
		cfg.Skip = skipFlag
	}
	if skipFile != "" {
		cfg.SkipFile = skipFile
	}
	if logOn {
		cfg.Log.Enabled = true
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func initLogging() error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	return logger.Init(logger.Options{Enabled: cfg.Log.Enabled, LogDir: cfg.Log.Dir, Level: level})
}

// session is a repository plus the settings it was built from.
type session struct {
	cfg   *config.Config
	store types.Store
	skip  types.SkipSource
	repo  *startup.Repository
}

// openSession resolves settings and builds a repository for the target.
func openSession() (*session, error) {
	cfg, err := settings()
	if err != nil {
		return nil, err
	}
	store, err := cfg.StoreValue()
	if err != nil {
		return nil, err
	}
	skip, err := cfg.SkipSource()
	if err != nil {
		return nil, err
	}

	id, err := identity()
	if err != nil {
		return nil, err
	}

	acc, err := regview.New(regview.Options{
		Host:             cfg.Host,
		LocalName:        id.MachineName,
		Store:            store,
		AutoStartService: cfg.StartService,
		Backend:          backend,
		Services:         services,
		Logger:           logger.L,
	})
	if err != nil {
		return nil, err
	}
	printVerbose("Target: %s (%s)\n", acc.Host(), store)

	opts := &startup.Options{Logger: logger.L}
	if cfg.SkipFile != "" {
		opts.SkipEntries = skiplist.FileSource{Path: cfg.SkipFile}
	}
	return &session{cfg: cfg, store: store, skip: skip, repo: startup.New(acc, opts)}, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprint(os.Stderr, paint(errorStyle, "Error: ")+fmt.Sprintf(format, args...))
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// logResult records the outcome of a mutating command.
func logResult(op string, err error, args ...any) {
	if err != nil {
		logger.Error(op+" failed", append(args, "error", err)...)
		return
	}
	logger.Info(op, args...)
}
