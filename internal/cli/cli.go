// Package cli implements the subplot command-line interface.
//
// Every command that takes a <layout> argument accepts either a layout file
// (.yaml, .yml, .toml or .json) or the name of a built-in preset.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/internal/buildinfo"
)

// Log levels for main.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel changes the level of the logger.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand returns the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "subplot",
		Short:        "Subplot computes panel positions for multi-panel figures",
		Long:         `Subplot turns a figure size, a grid and physical panel sizes and gaps in inches into normalized panel rectangles, and renders them for inspection.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.coordsCommand())
	root.AddCommand(c.fitCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.spacingCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.initCommand())

	return root
}

// loadArrangement reads a layout file or, if no such file exists, a preset
// of that name.
func (c *CLI) loadArrangement(arg string) (subplot.Arrangement, error) {
	if _, err := os.Stat(arg); errors.Is(err, fs.ErrNotExist) {
		l, perr := subplot.Preset(arg)
		if perr != nil {
			return nil, fmt.Errorf("%s is neither a layout file nor a preset: %w", arg, perr)
		}
		c.Logger.Debug("using preset", "name", arg)
		return l, nil
	}
	a, err := subplot.LoadFile(arg)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded layout", "file", arg)
	return a, nil
}

// coordinates returns the rectangles of a, expanded image cells for row
// layouts if final is set.
func coordinates(a subplot.Arrangement, final bool) ([]subplot.Rect, error) {
	if rl, ok := a.(subplot.RowLayout); ok && final {
		return rl.FinalCoordinates()
	}
	return a.Coordinates()
}

// checkFit logs overflow as a warning or, if strict, returns it.
func (c *CLI) checkFit(a subplot.Arrangement, strict bool) error {
	f, err := a.Fit()
	if err != nil {
		return err
	}
	if err := f.Err(); err != nil {
		if strict {
			return err
		}
		c.Logger.Warn("panels overflow the figure", "figure", f.Figure, "required", f.Required)
	}
	return nil
}
