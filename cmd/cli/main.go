package main

import (
	"fmt"
	"os"

	"github.com/az-tools/cost-advisor/pkg/runtime/terminal"
	"github.com/az-tools/cost-advisor/pkg/services/registry"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: registry.Default(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
