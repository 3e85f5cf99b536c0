package main

import (
	"fmt"
	"os"
	"path/filepath"

	apppkg "github.com/kk-code-lab/trex/internal/app"
	"github.com/kk-code-lab/trex/internal/config"
	"github.com/kk-code-lab/trex/internal/logging"
	"github.com/kk-code-lab/trex/internal/shellsetup"
	"github.com/spf13/cobra"
)

const autoShell = "auto"

var version = "dev"

// runApplication runs the UI and returns the directory to hand back to the
// shell wrapper.
var runApplication = func(opts apppkg.Options) (string, error) {
	app, err := apppkg.NewApplication(opts)
	if err != nil {
		return "", fmt.Errorf("initializing application: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return app.GetCurrentPath(), nil
}

var parentShellDetector = shellsetup.DetectParentShellName

type rootOptions struct {
	configFile string
	logFile    string
	debug      bool
	hideHidden bool
	setup      string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "trex [DIR]",
		Short:         "Three-pane terminal file browser",
		Long:          "trex browses directories with a parent pane, a listing and a live preview.\nPress x to quit into the current directory when the shell wrapper is installed (see --setup).",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("setup") {
				shell := opts.setup
				if shell == autoShell {
					shell = ""
				}
				return shellsetup.PrintSetup(cmd.OutOrStdout(), shell, shellsetup.Config{DetectParent: parentShellDetector})
			}
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default is $HOME/.config/trex/config.yaml)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.hideHidden, "hide-hidden", false, "start with dot-files hidden")
	flags.StringVar(&opts.setup, "setup", "", "print the shell integration function (bash, zsh, sh, ksh, fish)")
	flags.Lookup("setup").NoOptDefVal = autoShell

	return cmd
}

func run(cmd *cobra.Command, args []string, opts rootOptions) error {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}
	if opts.hideHidden {
		cfg.ShowHidden = false
	}

	startDir, err := resolveStartDir(args)
	if err != nil {
		return err
	}

	logFile := cfg.Log.File
	if opts.logFile != "" {
		logFile = opts.logFile
	}
	logger, closeLog, err := logging.New(logging.Options{File: logFile, Level: cfg.Log.Level, Debug: opts.debug})
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()

	result, err := runApplication(apppkg.Options{StartDir: startDir, Config: cfg, Logger: logger})
	if err != nil {
		logger.WithError(err).Error("application failed")
		return err
	}

	if result != "" {
		if err := writeResultFile(os.TempDir(), os.Getpid(), result); err != nil {
			logger.WithError(err).Warn("cannot write result file")
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not write result file: %v\n", err)
		}
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func resolveStartDir(args []string) (string, error) {
	if len(args) == 0 {
		return apppkg.GetCwd()
	}
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return "", err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	return dir, nil
}

// writeResultFile records the final directory for the shell wrapper. The
// file is owner-only since the wrapper cds into whatever it contains.
func writeResultFile(tempDir string, pid int, path string) error {
	resultFile := filepath.Join(tempDir, shellsetup.ResultFileName(pid))
	return os.WriteFile(resultFile, []byte(path), 0o600)
}
