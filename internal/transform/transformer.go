package transform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/cache"
	"github.com/courtrec/archive-migrator/internal/entity"
)

// CourtFinder resolves a court id from its full name in persistent storage.
// Absence is not an error; only storage failures are.
type CourtFinder interface {
	FindIDByName(ctx context.Context, name string) (uuid.UUID, bool, error)
}

// Transformer turns ExtractedMetadata into a typed ProcessedRecording.
// Resolution failures (unknown court, unparseable timestamp) never error
// here; they produce null fields for the validator to reject.
type Transformer struct {
	store    *cache.Store
	courts   CourtFinder
	versions *VersionIndex
	logger   *slog.Logger
}

func NewTransformer(store *cache.Store, courts CourtFinder, versions *VersionIndex, logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{store: store, courts: courts, versions: versions, logger: logger}
}

// Transform resolves the court, derives the case reference, classifies
// test data and computes version ordering for one unit. The only error
// path is a storage failure during court lookup.
func (t *Transformer) Transform(ctx context.Context, md entity.ExtractedMetadata) (entity.ProcessedRecording, error) {
	rec := entity.ProcessedRecording{
		ArchiveID:         md.ArchiveID,
		ArchiveName:       md.ArchiveName,
		CourtReference:    md.CourtReference,
		URN:               md.URN,
		ExhibitReference:  md.ExhibitReference,
		CaseReference:     DeriveReference(md.URN, md.ExhibitReference),
		DefendantLastName: md.DefendantLastName,
		WitnessFirstName:  md.WitnessFirstName,
		VersionType:       md.VersionType,
		VersionNumberStr:  ValidVersionNumber(md.VersionNumber),
		VersionNumber:     StandardizedVersionNumber(md.VersionType),
		Duration:          md.Duration,
		FileExtension:     constants.NormalizeExt(md.FileExtension),
		FileName:          md.FileName,
	}

	if err := t.resolveCourt(ctx, &rec); err != nil {
		return rec, err
	}

	if !md.CreateTime.IsZero() {
		ts := md.CreateTime
		rec.RecordingTime = &ts
		finished := ts.Add(md.Duration)
		rec.FinishedAt = &finished
	}

	rec.TestReason = t.classifyTest(md)

	t.resolveVersions(&rec)

	rec.ShareContacts = t.store.ChannelContacts(md.ArchiveNameNoExt())
	if len(rec.ShareContacts) > 0 {
		rec.State = constants.CaseStateOpen
	} else {
		rec.State = constants.CaseStateClosed
	}

	return rec, nil
}

// resolveCourt walks site map -> court cache -> storage. A miss at any
// stage leaves CourtID nil.
func (t *Transformer) resolveCourt(ctx context.Context, rec *entity.ProcessedRecording) error {
	name, ok := t.store.SiteName(rec.CourtReference)
	if !ok {
		t.logger.Debug("no site mapping for court reference", "reference", rec.CourtReference)
		return nil
	}
	rec.CourtName = name

	if id, ok := t.store.GetCourtID(name); ok {
		rec.CourtID = &id
		return nil
	}

	id, found, err := t.courts.FindIDByName(ctx, name)
	if err != nil {
		return fmt.Errorf("court lookup %q: %w", name, err)
	}
	if !found {
		t.logger.Warn("court not found in storage", "court", name)
		return nil
	}
	t.store.SaveCourt(name, id)
	rec.CourtID = &id
	return nil
}

func (t *Transformer) classifyTest(md entity.ExtractedMetadata) string {
	for _, field := range []string{md.ArchiveName, md.FileName} {
		if keyword, ok := constants.ContainsTestKeyword(field); ok {
			return fmt.Sprintf("contains test keyword %q", keyword)
		}
	}
	if md.Duration > 0 && md.Duration < constants.MinRecordingDuration {
		return fmt.Sprintf("duration %s below minimum %s", md.Duration, constants.MinRecordingDuration)
	}
	return ""
}

func (t *Transformer) resolveVersions(rec *entity.ProcessedRecording) {
	key := GroupKey(rec.URN, rec.ExhibitReference, rec.WitnessFirstName, rec.DefendantLastName)
	isCopy := rec.IsCopy()

	rec.OrigVersionStr = t.versions.ResolveOrigVersion(key, rec.VersionNumberStr, isCopy)
	if isCopy {
		if i := strings.Index(rec.VersionNumberStr, "."); i >= 0 {
			rec.CopyVersionStr = rec.VersionNumberStr[i+1:]
		}
	}

	if max, ok := t.versions.MostRecent(key, rec.VersionType); ok {
		rec.IsMostRecent = CompareVersionStrings(rec.VersionNumberStr, max) >= 0
	} else {
		rec.IsMostRecent = true
	}
}

// DeriveReference builds the case reference from the URN and exhibit
// reference: both present joins them with a hyphen, one present uses it
// alone, neither yields an empty reference.
func DeriveReference(urn, exhibitRef string) string {
	urn = strings.TrimSpace(urn)
	exhibitRef = strings.TrimSpace(exhibitRef)
	switch {
	case urn != "" && exhibitRef != "":
		return urn + "-" + exhibitRef
	case urn != "":
		return urn
	default:
		return exhibitRef
	}
}
