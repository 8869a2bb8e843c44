package main

import (
	"context"
	"fmt"
	"os"

	"github.com/example/lister/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background(), cli.RootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
