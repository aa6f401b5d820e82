package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "strtable v0.1 -- HEAD"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strtable",
		Short: "strtable merges flat string assignments into a nested table.",
		Long: `strtable reads lines such as

  level_editor.menu[1] = "File",

from files or stdin and prints them as one nested, canonically ordered table.`,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newNamesCmd())
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure. Help requests
// exit zero.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of strtable",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// newLogger logs to w, at debug level when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
