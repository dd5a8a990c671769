package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	g.Logger.Debug("Configuration resolved", logfields.ConfigPath(root.Config), "snapshot", config.Snapshot(cfg))
	_, err = fmt.Fprintf(g.Out, "%s is valid: %d navbar entries, %d sidebar sections, %d plugins\n",
		root.Config, len(cfg.Navbar()), len(cfg.Sidebar()), len(cfg.Plugins()))
	return err
}
