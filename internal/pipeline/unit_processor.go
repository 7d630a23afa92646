package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/entity"
	"github.com/courtrec/archive-migrator/internal/extraction"
	"github.com/courtrec/archive-migrator/internal/migration"
	"github.com/courtrec/archive-migrator/internal/transform"
	"github.com/courtrec/archive-migrator/internal/validation"
)

// UnitProcessor runs one migration unit through extract -> transform ->
// validate -> build, routing every rejection to the tracker with its
// failure category. A nil group with ok=false means the unit was tracked
// and is done.
type UnitProcessor struct {
	Extractor   *extraction.Extractor
	Transformer *transform.Transformer
	Validator   *validation.Validator
	Builder     *migration.Builder
	Tracker     migration.Tracker
	Logger      *slog.Logger
}

func NewUnitProcessor(ex *extraction.Extractor, tr *transform.Transformer, v *validation.Validator, b *migration.Builder, tracker migration.Tracker, logger *slog.Logger) *UnitProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &UnitProcessor{
		Extractor:   ex,
		Transformer: tr,
		Validator:   v,
		Builder:     b,
		Tracker:     tracker,
		Logger:      logger,
	}
}

// ProcessUnit returns the built group for a valid unit, or (nil, false)
// after recording the outcome for everything else.
func (p *UnitProcessor) ProcessUnit(ctx context.Context, item entity.ArchiveItem) (*entity.MigratedGroup, bool) {
	res, err := p.Extractor.Extract(item, parseCreateTime(item))
	if err != nil {
		if errors.Is(err, extraction.ErrNoPatternMatched) {
			p.Tracker.RecordFailure(constants.CategoryNoPattern,
				"no extraction pattern matched", item.ArchiveID, item.ArchiveName)
		} else {
			p.Tracker.RecordFailure(constants.CategoryGeneralError, err.Error(), item.ArchiveID, item.ArchiveName)
		}
		return nil, false
	}
	if res.IsTest() {
		p.Tracker.RecordTestItem("matched test pattern "+res.TestPattern, item.ArchiveID, item.ArchiveName)
		return nil, false
	}

	rec, err := p.Transformer.Transform(ctx, res.Metadata)
	if err != nil {
		p.Tracker.RecordFailure(constants.CategoryGeneralError, err.Error(), item.ArchiveID, item.ArchiveName)
		return nil, false
	}

	if vr := p.Validator.Validate(rec); !vr.Valid {
		if vr.Category == constants.CategoryTest {
			p.Tracker.RecordTestItem(vr.Reason, item.ArchiveID, item.ArchiveName)
		} else {
			p.Tracker.RecordFailure(vr.Category, vr.Reason, item.ArchiveID, item.ArchiveName)
		}
		return nil, false
	}

	group, err := p.Builder.Build(rec)
	if err != nil {
		switch {
		case errors.Is(err, migration.ErrOrphanCopy):
			p.Tracker.RecordFailure(constants.CategoryOrphanCopy, err.Error(), item.ArchiveID, item.ArchiveName)
		case errors.Is(err, migration.ErrInvalidCaseReference):
			p.Tracker.RecordFailure(constants.CategoryBuildFailed, err.Error(), item.ArchiveID, item.ArchiveName)
		default:
			p.Tracker.RecordFailure(constants.CategoryGeneralError, err.Error(), item.ArchiveID, item.ArchiveName)
		}
		return nil, false
	}

	return group, true
}

func parseCreateTime(item entity.ArchiveItem) time.Time {
	if t := transform.ParseTimestamp(item.CreateTime); t != nil {
		return *t
	}
	return time.Time{}
}
