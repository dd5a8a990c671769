package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitecfg/internal/config"
)

// Global is bound into every command's Run method.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer // command results
	Err    io.Writer // logs and user-facing errors
}

// NewGlobal returns a Global writing to the process streams.
func NewGlobal() *Global {
	return &Global{Logger: slog.Default(), Out: os.Stdout, Err: os.Stderr}
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Site configuration file path" default:"site.yaml"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text or json)" default:"text"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Validate the site configuration"`
	Resolve  ResolveCmd  `cmd:"" help:"Print the normalized site configuration"`
	Export   ExportCmd   `cmd:"" help:"Render the configuration for a static site generator"`
	Check    CheckCmd    `cmd:"" help:"Check that configured pages exist in the docs tree"`
	Watch    WatchCmd    `cmd:"" help:"Re-validate the configuration whenever it changes"`
	Init     InitCmd     `cmd:"" help:"Write an example site configuration"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply(g *Global) error {
	format, err := config.ParseLogFormat(c.LogFormat)
	if err != nil {
		return err
	}
	g.Logger = config.NewLogger(g.Err, format, c.Verbose)
	slog.SetDefault(g.Logger)
	return nil
}
