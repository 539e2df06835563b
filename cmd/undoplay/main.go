// Command undoplay is a playground for the undo engine: it drives a
// plain-text document through undo.Record/undo.History so the core
// package's behavior is visible from the outside, the way a real
// caller would exercise it.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "undoplay",
		Short: "Playground for the undo engine",
		Long: `undoplay drives a plain-text document through the undo engine's
Record and History, so its apply/undo/redo/merge/branch behavior can be
seen from the command line instead of just from its tests.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file (default: $UNDOPLAY_CONFIG, else undoplay.yaml in ~/.config/undoplay or .)")

	rootCmd.AddCommand(
		playCmd(&configFile),
		demoCmd(&configFile),
		branchesCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("undoplay version %s (%s)\n", version, commit)
			fmt.Printf("go version %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
