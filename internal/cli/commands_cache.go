package cli

import (
	"errors"
	"fmt"
	"midpoint-service/internal/adapters/cache"
	"time"

	"github.com/spf13/cobra"
)

var errNoDatabase = errors.New("DATABASE_URL is required")

func newMigrateCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the geocode and travel cache tables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), deps)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.DB == nil {
				return fmt.Errorf("migrate: %w", errNoDatabase)
			}
			if err := cache.InitSchema(cmd.Context(), a.DB); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), "Schema ready.")
		},
	}
}

func newPruneCommand(deps Dependencies) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete travel cache rows older than a given age.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), deps)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.DB == nil {
				return fmt.Errorf("prune: %w", errNoDatabase)
			}

			maxAge := olderThan
			if !cmd.Flags().Changed("older-than") {
				maxAge = a.Config.TravelCacheTTL
			}
			if maxAge <= 0 {
				return fmt.Errorf("prune: --older-than must be positive, got %s", maxAge)
			}

			n, err := cache.PruneTravelCache(cmd.Context(), a.DB, maxAge)
			if err != nil {
				return fmt.Errorf("prune: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), fmt.Sprintf("Pruned %d travel cache rows older than %s.", n, maxAge))
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Maximum row age to keep (default TRAVEL_CACHE_TTL).")

	return cmd
}
