package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cidl/internal/driver"
	"cidl/internal/project"
	"cidl/internal/text"
	"cidl/internal/types"
)

// loadManifest returns the manifest named by --config, or the one found
// upward from the working directory. A missing manifest is not an error
// unless --config was given.
func loadManifest(cmd *cobra.Command) (*project.Manifest, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath != "" {
		return project.LoadFile(configPath)
	}
	m, _, err := project.Load(".")
	return m, err
}

// pipelineOptions merges the manifest and command flags into driver options.
// Flags win over the manifest. input, when non-empty, replaces the
// manifest input.
func pipelineOptions(cmd *cobra.Command, input string, targets driver.Target) (driver.Options, *project.Manifest, error) {
	m, err := loadManifest(cmd)
	if err != nil {
		return driver.Options{}, nil, err
	}

	opts := driver.Options{Input: input, Targets: targets}
	if m != nil {
		if opts.Input == "" {
			opts.Input = m.InputPath()
		}
		opts.Library = m.Config.Library.Name
		opts.Indent = m.Config.Output.Indent
		opts.HeaderExt = m.Config.Output.HeaderExt
		opts.Header = m.Config.HeaderOptions()
		opts.Scalars, opts.Duplicates = m.Config.Policies()
	}
	if opts.Input == "" {
		return driver.Options{}, nil, fmt.Errorf("no input given and no %s found\nplease specify a descriptor file, e.g.:\n  cidl %s path/to/library.toml", project.ManifestName, cmd.Name())
	}

	flags := cmd.Flags()
	if flags.Changed("indent") || flags.Changed("tabs") {
		width, _ := flags.GetInt("indent")
		tabs, _ := flags.GetBool("tabs")
		opts.Indent = text.IndentOf(width, tabs)
	}
	if flags.Changed("unknown-scalar") {
		s, _ := flags.GetString("unknown-scalar")
		if opts.Scalars, err = types.ParseScalarPolicy(s); err != nil {
			return driver.Options{}, nil, err
		}
	}
	if flags.Changed("duplicates") {
		s, _ := flags.GetString("duplicates")
		if opts.Duplicates, err = types.ParseDuplicatePolicy(s); err != nil {
			return driver.Options{}, nil, err
		}
	}
	opts.MaxDiagnostics, _ = flags.GetInt("max-diagnostics")
	opts.WarningsAsErrors, _ = flags.GetBool("warnings-as-errors")
	opts.EnableTimings, _ = flags.GetBool("timings")
	return opts, m, nil
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// useColor decides colorization for w from --color.
func useColor(cmd *cobra.Command, w io.Writer) bool {
	mode, _ := cmd.Flags().GetString("color")
	switch strings.ToLower(mode) {
	case "on", "always":
		return true
	case "off", "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return quiet
}
