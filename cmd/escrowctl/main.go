package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/keyescrow/internal/client/cli"
)

func main() {

	cmd := cli.NewRootCommand(cli.DialGRPC)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

}
