package main

import (
	"os"

	"github.com/hashicorp-forge/padclient/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
