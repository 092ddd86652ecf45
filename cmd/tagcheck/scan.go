package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/jobtome-labs/tagcheck"
	"github.com/spf13/afero"
)

type scanCommand struct {
	// betteralign:ignore

	// Validation
	OptionsCheck OptionsCheck `group:"Validation"`
	// Template discovery
	OptionsFind OptionsFind `group:"Template discovery"`
	// Output
	OptionsOutput OptionsOutput `group:"Output"`

	Args struct {
		DirectoryPath string `positional-arg-name:"directory-path" description:"Directory to scan (default: current directory)"`
	} `positional-args:"yes"`

	stdout io.Writer
	code   int
}

type OptionsCheck struct {
	Origin     string `short:"o" long:"origin"      description:"Expected URL prefix of remote templates" default:"https://raw.githubusercontent.com/jobtome-labs/ci-templates/"`
	CurrentTag string `short:"t" long:"current-tag" description:"Current release tag (vMAJOR.MINOR.PATCH)" required:"yes"`
}

type OptionsFind struct {
	Patterns []string `short:"p" long:"pattern" description:"Glob selecting template files, repeatable" default:"**/*.{yml,yaml}"`
	Exclude  []string `short:"e" long:"exclude" description:"Glob dropping template files, repeatable" default:".git/**"`
}

type OptionsOutput struct {
	Verbose []bool `short:"v" long:"verbose" description:"Increase verbosity (-v progress, -vv details and full report)"`
}

// Execute implements flags.Commander. Validation outcomes are reported
// through c.code; returned errors are input errors.
func (c *scanCommand) Execute(_ []string) error {
	root, err := tagcheck.ResolveRoot(c.Args.DirectoryPath)
	if err != nil {
		c.code = exitUsage
		return err
	}

	cfg, err := tagcheck.NewConfig(c.OptionsCheck.Origin, c.OptionsCheck.CurrentTag, root)
	if err != nil {
		c.code = exitInvalidTag
		return err
	}

	verbosity := len(c.OptionsOutput.Verbose)
	logger := newLogger(c.stdout, verbosity)

	fsys := afero.NewBasePathFs(afero.NewOsFs(), cfg.Root)
	paths, err := tagcheck.FindTemplates(fsys, tagcheck.FindOptions{
		Patterns: c.OptionsFind.Patterns,
		Exclude:  c.OptionsFind.Exclude,
	})
	if err != nil {
		c.code = exitUsage
		return err
	}
	logger.Info("found templates", "root", cfg.Root, "count", len(paths))

	report, err := tagcheck.NewScanner(cfg, fsys, logger).Scan(paths)
	if err != nil {
		c.code = exitUsage
		return err
	}

	if verbosity >= 2 {
		if err := c.printJSON(report); err != nil {
			c.code = exitUsage
			return err
		}
	}

	c.code = exitOK

	failed, n := tagcheck.FilterFailed(report.Results)
	if n > 0 {
		logger.Error("validation failed", "failures", n)
		if err := c.printJSON(failed); err != nil {
			c.code = exitUsage
			return err
		}
		c.code = exitFailed
	}

	// A revision mismatch overrides the failure code.
	if !report.Consistent() {
		logger.Error("templates reference more than one revision",
			"revisions", report.Metadata.UniqueRevisions)
		c.code = exitInconsistent
	}

	if c.code == exitOK {
		logger.Info("all templates ok", "revisions", report.Metadata.UniqueRevisions)
	}

	return nil
}

func (c *scanCommand) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	_, err = fmt.Fprintln(c.stdout, string(data))

	return err
}

// newLogger maps -v occurrences to log levels: none prints errors only,
// one adds progress and warnings, two or more add per-link details.
func newLogger(w io.Writer, verbosity int) *log.Logger {
	level := log.ErrorLevel
	switch {
	case verbosity >= 2:
		level = log.DebugLevel
	case verbosity == 1:
		level = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "tagcheck",
	})
}
