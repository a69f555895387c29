package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenatx/nart/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "nart",
	Short: "nart – a minimal terminal emulator",
	Long:  "nart hosts a shell behind a pseudo-terminal and emulates the screen it draws.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: run the interactive terminal
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
