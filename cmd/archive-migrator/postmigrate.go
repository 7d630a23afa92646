package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/courtrec/archive-migrator/internal/common"
	"github.com/courtrec/archive-migrator/internal/entity"
	"github.com/courtrec/archive-migrator/internal/migration"
	"github.com/courtrec/archive-migrator/internal/notify"
	"github.com/courtrec/archive-migrator/internal/pipeline"
	"github.com/courtrec/archive-migrator/internal/repository"
	"github.com/courtrec/archive-migrator/internal/writer"
)

func newPostMigrateCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "post-migrate",
		Short: "Persist deferred invites and share bookings from a prior migrate run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := common.LoadConfig()
			if cfg.Database.DSN == "" {
				return common.NewAppError("CONFIG_ERROR", "DB_URL is required", common.ErrInvalidInput)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			post, err := readPostMigrationFile(cfg.Migration.ReportDir)
			if err != nil {
				return err
			}

			entc, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer repository.Close(entc, pool, logger)

			var notifier notify.Notifier = notify.NoopNotifier{}
			if cfg.Migration.NotificationsEnabled {
				notifier = notify.NewLogNotifier(logger)
			}

			tracker := migration.NewReportTracker(logger)
			users := repository.NewUserRepository(entc, logger)
			pm := writer.NewPostMigrationProcessor(entc, users, notifier, tracker, logger)
			pipeline.RunPostMigration(ctx, pm, post, logger)

			return tracker.WriteReports(cfg.Migration.ReportDir)
		},
	}
}

func readPostMigrationFile(dir string) (entity.PostMigrationGroup, error) {
	var post entity.PostMigrationGroup
	data, err := os.ReadFile(filepath.Join(dir, postMigrationFile))
	if err != nil {
		return post, fmt.Errorf("read %s: %w", postMigrationFile, err)
	}
	if err := json.Unmarshal(data, &post); err != nil {
		return post, fmt.Errorf("parse %s: %w", postMigrationFile, err)
	}
	return post, nil
}
