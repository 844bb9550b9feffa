package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/toppa/internal/config"
)

var flagRulesConfig string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective rules",
	Long: `Resolve the rules search path and print the result as YAML.
The output is a complete rules file and can be edited and passed back
with 'toppa play --config'.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.LoadToppa(flagRulesConfig)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding rules: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rulesCmd.Flags().StringVar(&flagRulesConfig, "config", "", "Path to custom rules YAML")
}
