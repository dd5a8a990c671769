package commands

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// ResolveCmd prints the canonical form of the configuration.
type ResolveCmd struct {
	Format string `short:"f" default:"yaml" help:"Output format (yaml or json)" enum:"yaml,json"`
}

func (r *ResolveCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	var out []byte
	if r.Format == "json" {
		out, err = json.MarshalIndent(cfg.ToRaw(), "", "  ")
		out = append(out, '\n')
	} else {
		out, err = yaml.Marshal(cfg.ToRaw())
	}
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to encode configuration").Build()
	}
	_, err = g.Out.Write(out)
	return err
}
