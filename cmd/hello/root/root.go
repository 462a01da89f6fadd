package root

import (
	"github.com/flarebyte/hello/internal/greeting"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for hello.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Print Hello World",
		// Every token is an ignored positional argument, --help included.
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return greeting.Write(cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	return cmd
}

// Execute runs the root command. Process arguments are not forwarded.
func Execute() error {
	cmd := NewRootCmd()
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs([]string{})
	return cmd.Execute()
}
