package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "labsite",
	Short: "Static and live website generator for research labs",
	Long: `labsite renders a research lab website (home, members, research,
publications, gallery and contact pages) from a directory of JSON content
documents. Build a static site with "labsite build" or preview it with
live filtering, lightbox and carousel sessions using "labsite serve".`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".labsite.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log_level from the config (debug, info, warn, error)")
}
