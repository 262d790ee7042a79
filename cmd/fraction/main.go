package main

import (
	"context"
	"os"

	"github.com/govalues/fraction/cmd/fraction/commands"
)

func main() {
	cmd := commands.RootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
