package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/padclient/internal/cmd/base"
	"github.com/hashicorp-forge/padclient/pkg/etherpad"
)

const defaultSessionTTL = 24 * time.Hour

// Commands returns a factory per operation keyed "<resource> <operation>",
// plus a parent command per resource and the "operations" listing.
func Commands(newBase func() *base.Command) map[string]cli.CommandFactory {
	cmds := make(map[string]cli.CommandFactory, len(definitions)+5)

	for _, def := range definitions {
		def := def
		cmds[Key(def.op)] = func() (cli.Command, error) {
			return &Command{
				Command: newBase(),
				def:     def,
				args:    args{now: time.Now},
			}, nil
		}
	}

	for _, r := range []etherpad.Resource{
		etherpad.ResourceGroup,
		etherpad.ResourceAuthor,
		etherpad.ResourceSession,
		etherpad.ResourcePad,
	} {
		r := r
		cmds[string(r)] = func() (cli.Command, error) {
			return &ResourceCommand{Command: newBase(), resource: r}, nil
		}
	}

	cmds["operations"] = func() (cli.Command, error) {
		return &OperationsCommand{Command: newBase()}, nil
	}

	return cmds
}

// ResourceCommand groups the operation commands of one resource.
type ResourceCommand struct {
	*base.Command

	resource etherpad.Resource
}

func (c *ResourceCommand) Synopsis() string {
	return fmt.Sprintf("Manage %ss", c.resource)
}

func (c *ResourceCommand) Help() string {
	return fmt.Sprintf(`Usage: padctl %s <subcommand> [options]

  This command groups the %s operations of the Etherpad API.`, c.resource, c.resource)
}

func (c *ResourceCommand) Run(args []string) int {
	return cli.RunResultHelp
}

// OperationsCommand prints the operation catalog.
type OperationsCommand struct {
	*base.Command
}

func (c *OperationsCommand) Synopsis() string {
	return "List the API operations and their commands"
}

func (c *OperationsCommand) Help() string {
	return `Usage: padctl operations

  Lists every Etherpad API operation with its declared verb, its parameters
  and the padctl command that calls it.`
}

func (c *OperationsCommand) Run(args []string) int {
	var b strings.Builder
	for _, info := range etherpad.Operations() {
		fmt.Fprintf(&b, "%-28s %-5s %-40s %s\n",
			info.Name, info.Method, Key(info.Name), strings.Join(info.Params, ","))
	}
	c.UI.Output(strings.TrimRight(b.String(), "\n"))
	return 0
}
