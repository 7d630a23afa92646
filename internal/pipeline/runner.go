package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/courtrec/archive-migrator/internal/common"
	"github.com/courtrec/archive-migrator/internal/entity"
	"github.com/courtrec/archive-migrator/internal/transform"
	"github.com/courtrec/archive-migrator/internal/writer"
)

// Runner drives the batch: a sequential version pre-pass, then chunked
// processing with the build phase in order (chains for one unit complete
// before the next starts) and writes fanned out across a bounded worker
// pool. Cancelling the context stops further chunks; committed items stay
// committed.
type Runner struct {
	Processor *UnitProcessor
	Writer    *writer.Writer
	Versions  *transform.VersionIndex
	ChunkSize int
	Workers   int
	// DryRun builds and validates every unit but skips the write phase.
	DryRun bool
	Logger *slog.Logger
}

func NewRunner(p *UnitProcessor, w *writer.Writer, versions *transform.VersionIndex, chunkSize, workers int, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if chunkSize <= 0 {
		chunkSize = 100
	}
	if workers <= 0 {
		workers = 1
	}
	return &Runner{
		Processor: p,
		Writer:    w,
		Versions:  versions,
		ChunkSize: chunkSize,
		Workers:   workers,
		Logger:    logger,
	}
}

// Run processes all items and returns the deferred invites and share
// bookings for the post-migration pass. The returned error is non-nil
// only for batch-fatal conditions (context cancellation); per-item
// failures are tracked, not returned.
func (r *Runner) Run(ctx context.Context, items []entity.ArchiveItem) (entity.PostMigrationGroup, error) {
	var post entity.PostMigrationGroup

	r.Logger.Info("starting migration run", "run_id", common.RunIDFromContext(ctx), "items", len(items))
	r.registerVersions(ctx, items)

	for start := 0; start < len(items); start += r.ChunkSize {
		if err := ctx.Err(); err != nil {
			r.Logger.Warn("batch cancelled", "processed", start, "total", len(items))
			return post, err
		}

		end := start + r.ChunkSize
		if end > len(items) {
			end = len(items)
		}
		chunk := items[start:end]

		groups := make([]*entity.MigratedGroup, 0, len(chunk))
		for _, item := range chunk {
			if group, ok := r.Processor.ProcessUnit(ctx, item); ok {
				groups = append(groups, group)
				post.Invites = append(post.Invites, group.Invites...)
				post.ShareBookings = append(post.ShareBookings, group.ShareBookings...)
			}
		}

		if r.DryRun {
			r.Logger.Info("chunk complete (dry run)", "from", start, "to", end, "built", len(groups))
			continue
		}

		succeeded, failed := r.writeGroups(ctx, groups)
		r.Logger.Info("chunk complete",
			"from", start, "to", end, "built", len(groups),
			"written", succeeded, "write_failures", failed)
	}

	return post, nil
}

// registerVersions is the sequential pre-pass that teaches the version
// index every version string in the batch, so most-recent checks during
// transform see the whole picture.
func (r *Runner) registerVersions(ctx context.Context, items []entity.ArchiveItem) {
	registered := 0
	for _, item := range items {
		res, err := r.Processor.Extractor.Extract(item, parseCreateTime(item))
		if err != nil || res.IsTest() {
			continue
		}
		r.Versions.Register(res.Metadata)
		registered++
	}
	r.Logger.Info("version pre-pass complete", "items", len(items), "registered", registered)
}

// writeGroups fans the chunk's groups out across the worker pool. Writer
// items are independent; same-case serialization happens inside the
// writer.
func (r *Runner) writeGroups(ctx context.Context, groups []*entity.MigratedGroup) (succeeded, failed int) {
	work := make(chan *entity.MigratedGroup)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < r.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for group := range work {
				ok := r.Writer.ProcessOneItem(ctx, group)
				mu.Lock()
				if ok {
					succeeded++
				} else {
					failed++
				}
				mu.Unlock()
			}
		}()
	}

	for _, group := range groups {
		work <- group
	}
	close(work)
	wg.Wait()
	return succeeded, failed
}

// RunPostMigration persists the deferred invites and share bookings in a
// second pass, once the main pass has committed the users and bookings
// they reference.
func RunPostMigration(ctx context.Context, p *writer.PostMigrationProcessor, post entity.PostMigrationGroup, logger *slog.Logger) bool {
	if logger == nil {
		logger = slog.Default()
	}
	ok := p.ProcessOneItem(ctx, post)
	logger.Info("post-migration pass complete",
		"invites", len(post.Invites), "share_bookings", len(post.ShareBookings), "clean", ok)
	return ok
}
