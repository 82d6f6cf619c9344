package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtower/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePruneCommand())
	cmd.AddCommand(c.cacheStatsCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// openFileCache returns the on-disk cache, or nil when nothing has been
// cached yet.
func openFileCache() (*cache.FileCache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, fmt.Errorf("get cache dir: %w", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	return cache.NewFileCache(dir)
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached layouts and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := openFileCache()
			if err != nil {
				return err
			}
			if fc == nil {
				printInfo(c.Stdout, "Cache is empty")
				return nil
			}
			if err := fc.Clear(); err != nil {
				return fmt.Errorf("clear %s: %w", fc.Dir(), err)
			}

			printSuccess(c.Stdout, "Cleared cache")
			printDetail(c.Stdout, "Directory: %s", fc.Dir())
			return nil
		},
	}
}

func (c *CLI) cachePruneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired and unreadable cache entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := openFileCache()
			if err != nil {
				return err
			}
			if fc == nil {
				printInfo(c.Stdout, "Cache is empty")
				return nil
			}
			n, err := fc.Prune()
			if err != nil {
				return fmt.Errorf("prune %s: %w", fc.Dir(), err)
			}
			loggerFromContext(cmd.Context()).Debug("pruned cache", "dir", fc.Dir(), "removed", n)
			printSuccess(c.Stdout, "Pruned %d entries", n)
			return nil
		},
	}
}

func (c *CLI) cacheStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show what the cache holds",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := openFileCache()
			if err != nil {
				return err
			}
			if fc == nil {
				printInfo(c.Stdout, "Cache is empty")
				return nil
			}
			st, err := fc.Stats()
			if err != nil {
				return fmt.Errorf("read %s: %w", fc.Dir(), err)
			}

			printInfo(c.Stdout, "%d entries, %s", st.Entries, formatBytes(st.Bytes))
			printDetail(c.Stdout, "Layouts: %d", st.Layouts)
			printDetail(c.Stdout, "Artifacts: %d", st.Artifacts)
			if st.Expired > 0 {
				printDetail(c.Stdout, "Expired: %d (run 'wordtower cache prune')", st.Expired)
			}
			printDetail(c.Stdout, "Directory: %s", fc.Dir())
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(c.Stdout, dir)
			return nil
		},
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
