package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/vyra-go/internal/infrastructure/cli"
)

func main() {
	root := cli.NewRootCmd(cli.Options{Verbose: isVerbose()})

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("VYRA_DEBUG"), "1") || strings.EqualFold(os.Getenv("VYRA_DEBUG"), "true")
}
