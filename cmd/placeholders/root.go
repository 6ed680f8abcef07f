package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aellingwood/placeholders/internal/catalog"
	"github.com/aellingwood/placeholders/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placeholders",
	Short: "Generate placeholder images for the photo gallery",
	Long: "Placeholders writes one labelled, solid-color image per catalog entry\n" +
		"into public/photos/<category>/. Run without a subcommand to generate.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().String("config", "placeholders.yaml", "path to config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig resolves the configuration for cmd. A missing file is only an
// error when --config was given explicitly. Flags defined on cmd override
// file and environment values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	configPath, _ := flags.GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if flags.Changed("config") {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOrDefault(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	overrides := make(map[string]any)
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		overrides["output"], _ = cmd.Flags().GetString("output")
	}
	if f := cmd.Flags().Lookup("catalog"); f != nil && f.Changed {
		overrides["catalog"], _ = cmd.Flags().GetString("catalog")
	}
	if f := cmd.Flags().Lookup("category"); f != nil && f.Changed {
		overrides["categories"], _ = cmd.Flags().GetStringSlice("category")
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		overrides["formats"], _ = cmd.Flags().GetStringSlice("format")
	}
	if f := cmd.Flags().Lookup("quality"); f != nil && f.Changed {
		overrides["quality"], _ = cmd.Flags().GetInt("quality")
	}
	if f := cmd.Flags().Lookup("mkdir"); f != nil && f.Changed {
		overrides["mkdir"], _ = cmd.Flags().GetBool("mkdir")
	}
	if len(overrides) > 0 {
		if err := cfg.WithOverrides(overrides).Validate(); err != nil {
			return nil, err
		}
	}

	slog.Debug("resolved config", "output", cfg.Output, "catalog", cfg.Catalog, "formats", cfg.Formats)
	return cfg, nil
}

// loadCatalog returns the built-in table, or the one at cfg.Catalog,
// restricted to cfg.Categories.
func loadCatalog(cfg *config.Config) (catalog.Catalog, error) {
	c := catalog.Default()
	if cfg.Catalog != "" {
		var err error
		c, err = catalog.Load(cfg.Catalog)
		if err != nil {
			return nil, err
		}
	}
	return c.Filter(cfg.Categories...)
}
