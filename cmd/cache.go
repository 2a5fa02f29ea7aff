package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jcdickinson/doxymd/internal/config"
	"github.com/spf13/cobra"
)

var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Delete the stored snapshots of previous runs",
	Run:   runClearCache,
}

func runClearCache(cmd *cobra.Command, args []string) {
	dir := config.SnapshotDir()
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Println("snapshot cache is empty")
		return
	}

	if err := os.RemoveAll(dir); err != nil {
		slog.Error("failed to clear cache", "error", err)
		os.Exit(1)
	}
	fmt.Println("snapshot cache cleared")
}
