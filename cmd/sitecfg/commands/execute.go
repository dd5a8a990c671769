package commands

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// Execute parses args, runs the selected command and returns the process exit code.
func Execute(args []string, version string, g *Global) int {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitecfg"),
		kong.Description("Resolve, validate and export documentation site navigation."),
		kong.Vars{"version": version},
		kong.Bind(g, cli),
		kong.Writers(g.Out, g.Err),
	)
	if err != nil {
		return handle(g, errors.WrapError(err, errors.CategoryInternal, "failed to build CLI").Build(), false)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handle(g, errors.WrapError(err, errors.CategoryValidation, "invalid arguments").Build(), cli.Verbose)
	}
	return handle(g, ctx.Run(), cli.Verbose)
}

func handle(g *Global, err error, verbose bool) int {
	return errors.NewCLIErrorAdapter(verbose, g.Logger).WithOutput(g.Err).Handle(err)
}
