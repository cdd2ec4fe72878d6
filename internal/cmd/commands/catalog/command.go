// Package catalog exposes every Etherpad API operation as a padctl command.
package catalog

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iancoleman/strcase"

	"github.com/hashicorp-forge/padclient/internal/cmd/base"
	"github.com/hashicorp-forge/padclient/pkg/etherpad"
)

// args collects the parameter flags an operation command may define.
type args struct {
	groupID      string
	groupMapper  string
	padID        string
	padName      string
	authorID     string
	authorMapper string
	sessionID    string
	name         string
	text         string
	html         string
	password     string
	rev          *int
	public       bool
	validUntil   int64
	ttl          time.Duration

	now func() time.Time
}

// revision returns nil when -rev was not given. Any given value, negative
// included, is passed on for the server to judge.
func (a *args) revision() *int {
	return a.rev
}

// expiry returns -valid-until if set, otherwise now plus -ttl.
func (a *args) expiry(now time.Time) time.Time {
	if a.validUntil > 0 {
		return time.Unix(a.validUntil, 0)
	}
	return now.Add(a.ttl)
}

// definition declares one operation command.
type definition struct {
	op       etherpad.Operation
	synopsis string
	flags    func(f *base.FlagSet, a *args)
	run      func(ctx context.Context, c *etherpad.Client, a *args) (any, error)
}

// Command runs a single API operation.
type Command struct {
	*base.Command

	def  definition
	args args
}

// Key returns the command key, e.g. "pad get-text".
func Key(op etherpad.Operation) string {
	info, _ := etherpad.Lookup(op)
	return fmt.Sprintf("%s %s", info.Resource, strcase.ToKebab(string(op)))
}

// flagName turns a wire parameter name into a flag name ("padID" -> "pad-id").
func flagName(param string) string {
	return strcase.ToKebab(param)
}

func (c *Command) Synopsis() string {
	return c.def.synopsis
}

func (c *Command) Help() string {
	info, _ := etherpad.Lookup(c.def.op)
	return fmt.Sprintf(`Usage: padctl %s [options]

  %s

  Calls the %q API operation (declared %s, sent as POST).`,
		Key(c.def.op), c.def.synopsis, c.def.op, info.Method) + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(Key(c.def.op), flag.ContinueOnError))
	c.ConnectionFlags(f)
	if c.def.flags != nil {
		c.def.flags(f, &c.args)
	}
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() > 0 {
		c.UI.Error(fmt.Sprintf("unexpected arguments: %s", strings.Join(f.Args(), " ")))
		return 1
	}

	cfg, err := c.ResolveConfig()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error resolving configuration: %v", err))
		return 1
	}

	client, err := c.Client(cfg)
	if err != nil {
		return c.Fail(err)
	}

	result, err := c.def.run(context.Background(), client, &c.args)
	if err != nil {
		return c.Fail(err)
	}
	return c.Output(cfg.Format, result)
}

// Common flag helpers.

func stringFlag(f *base.FlagSet, p *string, param, usage string) {
	f.StringVar(p, flagName(param), "", usage)
}

func revFlag(f *base.FlagSet, a *args) {
	f.Func("rev", "Revision to read (default: latest)", func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid revision %q", s)
		}
		a.rev = etherpad.Rev(n)
		return nil
	})
}
