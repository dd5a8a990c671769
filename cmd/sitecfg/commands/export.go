package commands

import (
	"os"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/export"
	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Format string `short:"f" required:"" help:"Target generator (vuepress or hugo)"`
	Output string `short:"o" help:"Write to file instead of stdout"`
}

func (e *ExportCmd) Run(g *Global, root *CLI) error {
	format, err := export.ParseFormat(e.Format)
	if err != nil {
		return err
	}
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	data, err := export.Render(cfg, format)
	if err != nil {
		return err
	}

	if e.Output == "" {
		_, err = g.Out.Write(data)
		return err
	}
	if err := os.WriteFile(e.Output, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write export").
			WithContext("file", e.Output).
			Build()
	}
	g.Logger.Info("Export written", logfields.Path(e.Output), logfields.Format(string(format)))
	return nil
}
