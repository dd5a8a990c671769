package main

import (
	"os"

	"git.home.luguber.info/inful/sitecfg/cmd/sitecfg/commands"
	"git.home.luguber.info/inful/sitecfg/internal/version"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], version.String(), commands.NewGlobal()))
}
