package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zhubert/clip2png/internal/clipboard"
	"github.com/zhubert/clip2png/internal/errors"
	"github.com/zhubert/clip2png/internal/exporter"
	"github.com/zhubert/clip2png/internal/logger"
	"github.com/zhubert/clip2png/internal/notification"
)

var (
	debugMode             bool
	quietMode             bool
	notifyMode            bool
	logFile               string
	version, commit, date string

	// exitCode is set by runExport and returned from Execute.
	exitCode exporter.ExitCode
)

// newSource opens the clipboard; tests swap it for a fake.
var newSource = func() clipboard.Source {
	return clipboard.NewSystem()
}

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "clip2png <output-path>",
	Short: "Save the clipboard image as a PNG file",
	Long: `clip2png writes the image currently on the system clipboard to the given
path as a PNG, creating missing parent directories.

Exit codes:
  0  image saved
  1  no output path given
  2  clipboard holds no image
  3  image could not be read from the clipboard
  4  directory creation or file save failed`,
	Args: cobra.ArbitraryArgs,
	// Arguments after the output path are ignored, even when they look like flags.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	PersistentPreRun:   initConfig,
	RunE:               runExport,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to --log-file")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (default "+logger.DefaultLogPath+" with --debug)")
	rootCmd.Flags().BoolVar(&notifyMode, "notify", false, "Show a desktop notification with the result")
}

// initConfig turns on file logging only when asked for, so a plain run
// creates no file besides the output.
func initConfig(cmd *cobra.Command, args []string) {
	if !debugMode && logFile == "" {
		return
	}

	path := logFile
	if path == "" {
		path = logger.DefaultLogPath
	}
	if debugMode && !quietMode {
		logger.SetDebug(true)
	} else {
		logger.SetDebug(false)
	}
	// Logging is best effort; an unopenable log file does not stop the export.
	_ = logger.Init(path)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	exitCode = exporter.Success
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		// Only malformed known flags get here, e.g. --log-file with no value.
		logger.Warn("CLI: argument parsing failed: %v", err)
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Usage: %s <output-path>\n", programName())
		return int(exporter.NoOutputPath)
	}
	return int(exitCode)
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("clip2png %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("clip2png %s\n", version)
}

func programName() string {
	if len(os.Args) == 0 {
		return "clip2png"
	}
	return filepath.Base(os.Args[0])
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logger.ComponentLogger("CLI")
	log.Debug("starting export", "args", args, "version", version)

	exp := exporter.New(newSource(), cmd.ErrOrStderr(), programName())
	res := exp.Export(args)
	exitCode = res.Code

	log.Info("export finished", "code", int(res.Code), "result", res.Code.String(), "path", res.Path)
	if res.Err != nil {
		log.Warn("export failed", "kind", errors.GetKind(res.Err).String(), "error", res.Err)
	}

	if notifyMode {
		if res.Code == exporter.Success {
			notification.Saved(res.Path, res.Width, res.Height)
		} else {
			notification.Failed(res.Code.String())
		}
	}
	return nil
}
