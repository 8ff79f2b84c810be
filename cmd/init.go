package cmd

import (
	"github.com/spf13/cobra"
	"github.com/dslab/labsite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize labsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that writes a .labsite.yml file and a starter data/site.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
