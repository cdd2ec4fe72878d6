package cmd

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"

	"github.com/hashicorp-forge/padclient/internal/version"
)

func TestRun_Version(t *testing.T) {
	ui := cli.NewMockUi()

	code := run("padctl", []string{"version"}, hclog.NewNullLogger(), ui)
	assert.Equal(t, 0, code)
	assert.Equal(t, "padctl v"+version.Version+"\n", ui.OutputWriter.String())
}

func TestRun_Operations(t *testing.T) {
	ui := cli.NewMockUi()

	code := run("padctl", []string{"operations"}, hclog.NewNullLogger(), ui)
	assert.Equal(t, 0, code)
	assert.Contains(t, ui.OutputWriter.String(), "createGroupIfNotExistsFor")
}

func TestRun_ResourceShowsHelp(t *testing.T) {
	ui := cli.NewMockUi()

	code := run("padctl", []string{"pad"}, hclog.NewNullLogger(), ui)
	assert.Equal(t, 1, code)
	assert.Empty(t, ui.OutputWriter.String())
}
