package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/pages"
)

// CheckCmd verifies that the docs tree backs every configured page.
type CheckCmd struct {
	Docs string `short:"d" default:"docs" help:"Documentation root directory"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	report, err := pages.Check(cfg, c.Docs)
	if err != nil {
		return err
	}

	for _, p := range report.Pages {
		g.Logger.Debug("Page resolved", logfields.Field(p.Field), logfields.Path(p.File), "title", p.Title)
	}
	g.Logger.Info("Docs check complete", logfields.Path(c.Docs), logfields.Count(len(report.Pages)), "missing", len(report.Findings))
	for _, f := range report.Findings {
		if _, err := fmt.Fprintf(g.Out, "%s: %s (%s)\n", f.Field, f.Problem, f.URL); err != nil {
			return err
		}
	}
	if !report.OK() {
		return errors.DocsError(fmt.Sprintf("%d configured page(s) missing from %s", len(report.Findings), c.Docs)).
			WithContext("path", c.Docs).
			Build()
	}
	_, err = fmt.Fprintf(g.Out, "all %d configured pages found in %s\n", len(report.Pages), c.Docs)
	return err
}
