package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/courtrec/archive-migrator/internal/cache"
	"github.com/courtrec/archive-migrator/internal/common"
	"github.com/courtrec/archive-migrator/internal/entity"
	"github.com/courtrec/archive-migrator/internal/extraction"
	"github.com/courtrec/archive-migrator/internal/migration"
	"github.com/courtrec/archive-migrator/internal/notify"
	"github.com/courtrec/archive-migrator/internal/pipeline"
	"github.com/courtrec/archive-migrator/internal/refdata"
	"github.com/courtrec/archive-migrator/internal/repository"
	"github.com/courtrec/archive-migrator/internal/transform"
	"github.com/courtrec/archive-migrator/internal/validation"
	"github.com/courtrec/archive-migrator/internal/writer"
)

// postMigrationFile is the handoff between the migrate and post-migrate
// commands.
const postMigrationFile = "post_migration.json"

func newMigrateCmd(logger *slog.Logger) *cobra.Command {
	var skipPostPass bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run the main migration pass over the archive list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := common.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			runID := uuid.New().String()
			ctx = common.WithRunID(ctx, runID)
			return runMigrate(ctx, cfg, skipPostPass, logger.With("run_id", runID))
		},
	}
	cmd.Flags().BoolVar(&skipPostPass, "skip-post-pass", false,
		"write deferred invites/shares to disk instead of processing them")
	return cmd
}

func runMigrate(ctx context.Context, cfg *common.Config, skipPostPass bool, logger *slog.Logger) error {
	entc, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		return fmt.Errorf("database health check: %w", err)
	}

	store := cache.New(logger)
	if err := loadRefData(store, cfg, logger); err != nil {
		return err
	}

	items, err := refdata.LoadArchiveList(cfg.Migration.ArchiveListPath)
	if err != nil {
		return err
	}
	logger.Info("archive list loaded", "items", len(items))

	users := repository.NewUserRepository(entc, logger)
	robotID, err := resolveRobotUser(ctx, users, cfg.Migration.RobotUserEmail)
	if err != nil {
		return err
	}

	preloader := migration.NewPreloader(store, users, repository.NewCaseRepository(entc, logger), logger)
	if err := preloader.Preload(ctx); err != nil {
		return err
	}

	tracker := migration.NewReportTracker(logger)
	versions := transform.NewVersionIndex(store)
	proc := pipeline.NewUnitProcessor(
		extraction.NewExtractor(logger),
		transform.NewTransformer(store, repository.NewCourtRepository(entc, logger), versions, logger),
		validation.NewValidator(logger),
		migration.NewBuilder(store, robotID, logger),
		tracker,
		logger,
	)
	w := writer.NewWriter(entc, tracker, logger)
	runner := pipeline.NewRunner(proc, w, versions, cfg.Migration.ChunkSize, cfg.Migration.WriterWorkers, logger)
	runner.DryRun = cfg.Migration.DryRun

	post, runErr := runner.Run(ctx, items)

	if skipPostPass || cfg.Migration.DryRun {
		if err := writePostMigrationFile(cfg.Migration.ReportDir, post); err != nil {
			return err
		}
	} else {
		var notifier notify.Notifier = notify.NoopNotifier{}
		if cfg.Migration.NotificationsEnabled {
			notifier = notify.NewLogNotifier(logger)
		}
		pm := writer.NewPostMigrationProcessor(entc, users, notifier, tracker, logger)
		pipeline.RunPostMigration(ctx, pm, post, logger)
	}

	if err := tracker.WriteReports(cfg.Migration.ReportDir); err != nil {
		return err
	}

	migrated, failed, test := tracker.Counts()
	logger.Info("migration run complete", "migrated", migrated, "failed", failed, "test_items", test)
	return runErr
}

func loadRefData(store *cache.Store, cfg *common.Config, logger *slog.Logger) error {
	sites, err := refdata.LoadSites(cfg.RefData.SitesPath)
	if err != nil {
		return err
	}
	store.SetSites(sites)
	logger.Info("sites loaded", "count", len(sites))

	if cfg.RefData.ChannelsPath != "" {
		channels, err := refdata.LoadChannels(cfg.RefData.ChannelsPath)
		if err != nil {
			return err
		}
		store.SetChannelContacts(channels)
		logger.Info("channel contacts loaded", "count", len(channels))
	}
	return nil
}

// resolveRobotUser ensures the robot account that owns migration-created
// shares exists, and returns its id.
func resolveRobotUser(ctx context.Context, users repository.UserRepository, email string) (uuid.UUID, error) {
	id, err := users.EnsureByEmail(ctx, entity.UserDraft{
		ID:        uuid.New(),
		FirstName: "Migration",
		LastName:  "Robot",
		Email:     email,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve robot user: %w", err)
	}
	return id, nil
}

func writePostMigrationFile(dir string, post entity.PostMigrationGroup) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(post, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, postMigrationFile), data, 0o644)
}
