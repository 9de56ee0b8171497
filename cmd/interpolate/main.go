package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information; overridden at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "interpolate",
		Short: "Render {{ }} string interpolation templates",
		Long:  "interpolate evaluates {{ ... }} expressions embedded in text against a structured data context.",
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
