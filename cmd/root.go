package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jcdickinson/doxymd/internal/config"
	"github.com/jcdickinson/doxymd/internal/render"
	"github.com/jcdickinson/doxymd/internal/site"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "doxymd <xml-dir> <out-dir>",
	Short: "Render a Doxygen XML export as MkDocs Markdown",
	Example: `  doxymd build/doxygen/xml docs/api
  DOXYMD_RENDER_FRONT_MATTER=true doxymd xml site/api`,
	Args: cobra.ExactArgs(2),
	Run:  runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level, including page diffs")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(clearCacheCmd)
}

// loadConfig reads the configuration and installs the default logger.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	level := cfg.Log.Level
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return cfg
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	xmlDir, outDir := args[0], args[1]

	opts := site.Options{
		Render: render.Options{
			CodeLanguage: cfg.Render.CodeLanguage,
			CardClass:    cfg.Render.CardClass,
		},
		FrontMatter: cfg.Render.FrontMatter,
		Verify:      cfg.Output.Verify,
	}
	if cfg.Snapshot.Enabled {
		path, err := config.SnapshotPath(outDir)
		if err != nil {
			slog.Error("failed to resolve snapshot path", "error", err)
			os.Exit(1)
		}
		opts.SnapshotPath = path
	}

	res, err := site.NewGenerator(opts).Generate(xmlDir, outDir)
	if err != nil {
		slog.Error("generation failed", "xml", xmlDir, "error", err)
		os.Exit(1)
	}

	slog.Info("generation finished",
		"rendered", res.Rendered,
		"placeholders", res.Placeholders,
		"skipped", res.Skipped,
		"problems", len(res.Problems),
	)
	fmt.Printf("Wrote %d pages to %s (%d placeholders, %d skipped)\n",
		res.Written(), outDir, res.Placeholders, res.Skipped)
	if cfg.Snapshot.Enabled && !res.FirstRun {
		fmt.Printf("Changes since last run: %d added, %d removed, %d changed\n",
			len(res.Changes.Added), len(res.Changes.Removed), len(res.Changes.Changed))
	}
}
