package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/courtrec/archive-migrator/internal/common"
	"github.com/courtrec/archive-migrator/internal/repository"
)

func newDBHealthCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "dbhealth",
		Short: "Check connectivity to the migration target database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := common.LoadConfig()
			if cfg.Database.DSN == "" {
				return common.NewAppError("CONFIG_ERROR", "DB_URL is required", common.ErrInvalidInput)
			}

			ctx := cmd.Context()
			entc, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer repository.Close(entc, pool, logger)

			if err := repository.HealthCheck(ctx, pool, 1*time.Second, logger); err != nil {
				return fmt.Errorf("database health: %w", err)
			}
			fmt.Println("database health: OK")
			return nil
		},
	}
}
