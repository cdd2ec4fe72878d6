package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/padclient/internal/cmd/base"
	"github.com/hashicorp-forge/padclient/internal/cmd/commands/catalog"
	"github.com/hashicorp-forge/padclient/internal/version"
)

func commands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	newBase := func() *base.Command {
		return base.New(log, ui)
	}

	cmds := catalog.Commands(newBase)
	cmds["version"] = func() (cli.Command, error) {
		return &versionCommand{Command: newBase()}, nil
	}
	return cmds
}

type versionCommand struct {
	*base.Command
}

func (c *versionCommand) Synopsis() string {
	return "Print the padctl version"
}

func (c *versionCommand) Help() string {
	return "Usage: padctl version"
}

func (c *versionCommand) Run(args []string) int {
	c.UI.Output("padctl v" + version.Version)
	return 0
}
