package main

import (
	"fmt"

	"github.com/aellingwood/placeholders/internal/catalog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long:  "Print the fully resolved configuration after merging all sources.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))

		if dump, _ := cmd.Flags().GetBool("show-catalog"); dump {
			c, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			data, err := catalog.Marshal(c)
			if err != nil {
				return fmt.Errorf("encoding catalog: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "---")
			fmt.Fprint(cmd.OutOrStdout(), string(data))
		}
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("show-catalog", false, "also print the resolved catalog")
	rootCmd.AddCommand(configCmd)
}
