package transform

import (
	"strings"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/cache"
	"github.com/courtrec/archive-migrator/internal/entity"
)

const (
	fieldMaxVersion   = ":max"
	fieldOrigVersions = ":origs"
)

// VersionIndex records, per natural grouping, which version strings exist
// across the whole batch. The runner populates it in a sequential pre-pass
// before any unit is transformed, so plain read-then-write against the
// store is sufficient here; only the lookups run concurrently.
type VersionIndex struct {
	store *cache.Store
}

func NewVersionIndex(store *cache.Store) *VersionIndex {
	return &VersionIndex{store: store}
}

// Register notes one extracted unit's version within its group. The max
// version is tracked per version type: copies never supersede originals,
// they attach to them.
func (v *VersionIndex) Register(md entity.ExtractedMetadata) {
	key := GroupKey(md.URN, md.ExhibitReference, md.WitnessFirstName, md.DefendantLastName)
	version := ValidVersionNumber(md.VersionNumber)

	maxField := maxVersionField(key, md.VersionType)
	if cur, ok := v.store.Get(constants.CacheVersionsKey, maxField); !ok ||
		CompareVersionStrings(version, cur.(string)) > 0 {
		v.store.Set(constants.CacheVersionsKey, maxField, version)
	}

	if strings.EqualFold(md.VersionType, "ORIG") {
		origs := v.OrigVersions(key)
		for _, o := range origs {
			if o == version {
				return
			}
		}
		v.store.Set(constants.CacheVersionsKey, key+fieldOrigVersions, append(origs, version))
	}
}

// MostRecent returns the highest version string registered for a group
// and version type.
func (v *VersionIndex) MostRecent(groupKey, versionType string) (string, bool) {
	cur, ok := v.store.Get(constants.CacheVersionsKey, maxVersionField(groupKey, versionType))
	if !ok {
		return "", false
	}
	return cur.(string), true
}

func maxVersionField(groupKey, versionType string) string {
	return groupKey + ":" + strings.ToLower(versionType) + fieldMaxVersion
}

// OrigVersions returns the ORIG version strings registered for a group.
func (v *VersionIndex) OrigVersions(groupKey string) []string {
	cur, ok := v.store.Get(constants.CacheVersionsKey, groupKey+fieldOrigVersions)
	if !ok {
		return nil
	}
	origs, _ := cur.([]string)
	return origs
}

// ResolveOrigVersion determines which ORIG version a unit belongs to. An
// ORIG belongs to itself. A COPY with a dotted version ("2.1") belongs to
// the ORIG matching its prefix if one was registered; otherwise to the
// lowest registered ORIG, defaulting to "1" when the group has no ORIG at
// all.
func (v *VersionIndex) ResolveOrigVersion(groupKey, versionNumber string, isCopy bool) string {
	version := ValidVersionNumber(versionNumber)
	if !isCopy {
		return version
	}

	prefix := version
	if i := strings.Index(version, "."); i >= 0 {
		prefix = version[:i]
	}

	origs := v.OrigVersions(groupKey)
	lowest := ""
	for _, o := range origs {
		if o == prefix {
			return prefix
		}
		if lowest == "" || CompareVersionStrings(o, lowest) < 0 {
			lowest = o
		}
	}
	if lowest != "" {
		return lowest
	}
	return "1"
}
