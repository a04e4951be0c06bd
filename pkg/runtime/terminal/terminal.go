package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/az-tools/cost-advisor/pkg/runtime/terminal/commands"
	"github.com/az-tools/cost-advisor/pkg/runtime/terminal/export"
	"github.com/az-tools/cost-advisor/pkg/services/registry"
)

// CLI represents the command-line interface
type CLI struct {
	registry *registry.Registry
	reporter *export.Reporter
	plain    *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry *registry.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
		plain:    NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advisor",
		Short: "Azure cost optimization advisor",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.registry, commands.Renderers{
		Table: cli.reporter,
		Plain: cli.plain,
	}))
	cmd.AddCommand(commands.NewPoliciesCmd(cli.registry))
	cmd.AddCommand(commands.NewSummaryCmd(cli.registry))
	cmd.AddCommand(commands.NewTrendsCmd())
	cmd.AddCommand(commands.NewSecurityCmd())

	return cmd
}
