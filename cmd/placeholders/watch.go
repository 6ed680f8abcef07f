package main

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/aellingwood/placeholders/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate placeholders when the config or catalog changes",
	Long: "Watch generates once, then regenerates every time the config file, its\n" +
		".env file or the catalog file is saved, until interrupted.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		debounce, _ := cmd.Flags().GetDuration("debounce")
		configPath, _ := cmd.Root().PersistentFlags().GetString("config")

		var mu sync.Mutex
		regenerate := func() error {
			mu.Lock()
			defer mu.Unlock()
			return runGenerate(cmd, args)
		}

		if err := regenerate(); err != nil {
			log.Printf("Generation failed: %v", err)
		}

		paths := watchPaths(cmd, configPath)

		w := watch.NewWatcher(paths, debounce, func() {
			log.Println("Change detected, regenerating...")
			if err := regenerate(); err != nil {
				log.Printf("Generation failed: %v", err)
			}
		})
		log.Printf("Watching %v (Ctrl+C to stop)", paths)
		return w.Start(cmd.Context())
	},
}

// watchPaths lists the files that trigger regeneration: the config file, the
// .env file next to it and the catalog file, if one is set. When the config
// cannot be loaded the --catalog flag is used as is.
func watchPaths(cmd *cobra.Command, configPath string) []string {
	paths := []string{configPath, filepath.Join(filepath.Dir(configPath), ".env")}

	catalogPath, _ := cmd.Flags().GetString("catalog")
	if cfg, err := loadConfig(cmd); err == nil {
		catalogPath = cfg.Catalog
	}
	if catalogPath != "" {
		paths = append(paths, catalogPath)
	}
	return paths
}

func init() {
	addGenerateFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", 100*time.Millisecond, "quiet period before regenerating")

	rootCmd.AddCommand(watchCmd)
}
