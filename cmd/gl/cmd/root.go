package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/goinglogging/config"
	"github.com/msto63/goinglogging/gl"
)

var (
	cfgFile  string
	prefixes string
	color    bool
	noOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "gl",
	Short: "goinglogging - lightweight name = value debug output",
	Long: `goinglogging prints "name = value" lines for debugging, with optional
contextual prefixes (file, line, function, time, goroutine id, type tag)
and ANSI coloring.

It is a debug-print shim, not a logging framework: no levels, no
filtering, no async I/O.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			if err := config.Apply(cfgFile); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("prefixes") {
			p, err := gl.ParsePrefix(prefixes)
			if err != nil {
				return err
			}
			gl.SetPrefixes(p)
		}
		if cmd.Flags().Changed("color") {
			gl.SetColorEnabled(color)
		}
		if noOutput {
			gl.SetOutputEnabled(false)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&prefixes, "prefixes", "file|line", "prefix set, e.g. file|line|time")
	rootCmd.PersistentFlags().BoolVar(&color, "color", false, "wrap output lines in ANSI color")
	rootCmd.PersistentFlags().BoolVar(&noOutput, "no-output", false, "disable all output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
