package cmd

import (
	"fmt"
	"os"

	"orrery/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "orrery",
	Short: "3D Solar System Orrery",
	Long: `Orrery serves a static 3D view of the Sun and the eight planets
at their orbital distances, rendered in the browser with Plotly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format and the development config (ISO8601 timestamps) read
		// better for a CLI failure than production JSON.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
