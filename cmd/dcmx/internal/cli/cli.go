// Package cli wires dcmx's kong command tree together, adapted from the
// teacher's cmd/radx/internal/cli/cli.go (logger setup, kong.Parse shape)
// but pointed at the new p10/dataset core instead of the old dicom package.
package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/dcmxlabs/dcmx/cmd/dcmx/internal/build"
	"github.com/dcmxlabs/dcmx/cmd/dcmx/internal/commands"
	"github.com/dcmxlabs/dcmx/cmd/dcmx/internal/config"
	"github.com/dcmxlabs/dcmx/cmd/dcmx/internal/ui"
)

// CLI is the root kong command: global flags embedded directly (kong
// flattens an embedded struct's fields into the root command) plus one
// subcommand per p10 transform.
type CLI struct {
	config.GlobalConfig

	Dump      commands.DumpCmd      `cmd:"" help:"Print a data set as a table or DICOM JSON."`
	Filter    commands.FilterCmd    `cmd:"" help:"Keep only elements matching a path glob."`
	Anonymize commands.AnonymizeCmd `cmd:"" help:"De-identify a file under a PS3.15 profile."`
	Frames    commands.FramesCmd    `cmd:"" help:"Extract and report pixel data frame sizes."`

	Version kong.VersionFlag `name:"version" help:"Print version information and exit."`
}

// Run parses os.Args, configures logging, validates the global config, and
// dispatches to the selected subcommand's Run method.
func Run(version, commit, date string) error {
	build.SetBuildInfo(version, commit, date)

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("dcmx"),
		kong.Description("A streaming DICOM Part 10 toolkit."),
		kong.UsageOnError(),
		kong.Vars{"version": build.Get().String()},
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := cli.GlobalConfig.Validate(); err != nil {
		return err
	}

	logger := setupLogger(&cli.GlobalConfig)
	log.SetDefault(logger)

	ui.PrintBanner()

	return ctx.Run(&cli.GlobalConfig)
}

// setupLogger builds a charmbracelet/log logger from global flags,
// matching the teacher's cmd/radx setupLogger: caller reporting when
// --debug, timestamps, JSON formatting when --no-pretty.
func setupLogger(cfg *config.GlobalConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	switch cfg.LogLevel {
	case "trace", "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	case "fatal":
		logger.SetLevel(log.FatalLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if !cfg.Pretty {
		logger.SetFormatter(log.JSONFormatter)
	}

	return logger
}
