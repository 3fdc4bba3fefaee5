package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sheet-tools/sheet-cli/commands"
)

func main() {
	if err := commands.RootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
