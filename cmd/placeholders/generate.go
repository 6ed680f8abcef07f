package main

import (
	"github.com/aellingwood/placeholders/internal/build"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate placeholder images",
	Long: "Generate writes every catalog entry to <output>/<category>/<filename>,\n" +
		"overwriting existing files, and stops at the first error.",
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	builder := build.NewBuilder(afero.NewOsFs(), cmd.OutOrStdout(), build.BuildOptions{
		OutputDir: cfg.Output,
		Formats:   cfg.Formats,
		Quality:   cfg.Quality,
		MkdirAll:  cfg.Mkdir,
	})
	_, err = builder.Build(cmd.Context(), c)
	return err
}

// addGenerateFlags registers the flags shared by the root command, generate
// and watch.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "public/photos", "output root directory")
	cmd.Flags().String("catalog", "", "catalog file (YAML or TOML) replacing the built-in table")
	cmd.Flags().StringSlice("category", nil, "only generate these categories")
	cmd.Flags().StringSlice("format", nil, "output formats: svg, png, jpeg, webp")
	cmd.Flags().Int("quality", 75, "jpeg/webp quality (1-100)")
	cmd.Flags().Bool("mkdir", false, "create missing category directories")
}

func init() {
	addGenerateFlags(rootCmd)
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
