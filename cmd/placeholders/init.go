package main

import (
	"fmt"

	"github.com/aellingwood/placeholders/internal/catalog"
	"github.com/aellingwood/placeholders/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Prepare a project for placeholder generation",
	Long: "Init creates the category directories under the output root and writes\n" +
		"a starter placeholders.yaml and gallery.yaml. Existing files are kept.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		output, _ := cmd.Flags().GetString("output")

		res, err := scaffold.Init(afero.NewOsFs(), root, output, catalog.Default())
		if err != nil {
			return err
		}
		for _, p := range res.Created {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", p)
		}
		for _, p := range res.Skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "Exists  %s\n", p)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().StringP("output", "o", "public/photos", "output root directory")
	rootCmd.AddCommand(initCmd)
}
