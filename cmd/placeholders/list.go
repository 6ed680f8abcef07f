package main

import (
	"encoding/json"
	"fmt"

	"github.com/aellingwood/placeholders/internal/catalog"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	Long: "List prints the output path, label and color of every catalog entry.\n" +
		"With --jq the entries are filtered through a jq expression instead.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		expr, _ := cmd.Flags().GetString("jq")
		if expr == "" {
			for _, e := range c.Entries() {
				fmt.Fprintf(out, "%s  %s  %s\n", e.Path(cfg.Output), e.Label(), e.Color)
			}
			return nil
		}

		results, err := catalog.Query(cmd.Context(), c, expr)
		if err != nil {
			return err
		}
		for _, v := range results {
			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("encoding query result: %w", err)
			}
			fmt.Fprintln(out, string(data))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("output", "o", "public/photos", "output root directory")
	listCmd.Flags().String("catalog", "", "catalog file (YAML or TOML) replacing the built-in table")
	listCmd.Flags().StringSlice("category", nil, "only list these categories")
	listCmd.Flags().String("jq", "", "jq expression evaluated over the entry list")

	rootCmd.AddCommand(listCmd)
}
