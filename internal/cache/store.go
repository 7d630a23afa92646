package cache

import (
	"log/slog"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/entity"

	"github.com/google/uuid"
)

// Store is the run-scoped deduplication ledger and draft cache. Keys are
// namespaced hash entries (key + field) flattened onto a single in-memory
// cache; entries never expire and never get deleted within a run, which is
// what makes the Add-then-Get pattern in PutIfAbsent safe.
type Store struct {
	c      *gocache.Cache
	logger *slog.Logger
}

func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		c:      gocache.New(gocache.NoExpiration, 0),
		logger: logger,
	}
}

func flatten(key, field string) string {
	if field == "" {
		return key
	}
	return key + "#" + field
}

// Exists reports whether the (key, field) entry has been written.
func (s *Store) Exists(key, field string) bool {
	_, ok := s.c.Get(flatten(key, field))
	return ok
}

// Get returns the value stored under (key, field).
func (s *Store) Get(key, field string) (any, bool) {
	return s.c.Get(flatten(key, field))
}

// Set unconditionally writes (key, field) -> value.
func (s *Store) Set(key, field string, value any) {
	s.c.Set(flatten(key, field), value, gocache.NoExpiration)
}

// PutIfAbsent atomically stores value under (key, field) unless an entry
// already exists. It returns the winning value and whether it was loaded
// from the cache (true) rather than stored by this call (false). This is
// the check-and-set every dedup decision goes through; concurrent workers
// racing on the same key observe exactly one winner.
func (s *Store) PutIfAbsent(key, field string, value any) (any, bool) {
	k := flatten(key, field)
	if err := s.c.Add(k, value, gocache.NoExpiration); err == nil {
		return value, false
	}
	prior, ok := s.c.Get(k)
	if !ok {
		// Entries are never deleted during a run, so a failed Add implies a
		// readable entry.
		s.c.Set(k, value, gocache.NoExpiration)
		return value, false
	}
	return prior, true
}

// NormalizeCaseReference canonicalizes a case reference for cache keying:
// trimmed, upper-cased, inner whitespace collapsed to single spaces.
func NormalizeCaseReference(ref string) string {
	return strings.Join(strings.Fields(strings.ToUpper(ref)), " ")
}

// GetCase returns the cached case draft for a reference.
func (s *Store) GetCase(reference string) (*entity.CaseDraft, bool) {
	v, ok := s.Get(constants.CacheCasesKey, NormalizeCaseReference(reference))
	if !ok {
		return nil, false
	}
	c, ok := v.(*entity.CaseDraft)
	return c, ok
}

// SaveCase caches a case draft under its normalized reference.
func (s *Store) SaveCase(reference string, c *entity.CaseDraft) {
	s.Set(constants.CacheCasesKey, NormalizeCaseReference(reference), c)
}

// PutCaseIfAbsent atomically registers a case draft for a reference,
// returning the cached draft when another unit already registered one.
func (s *Store) PutCaseIfAbsent(reference string, c *entity.CaseDraft) (*entity.CaseDraft, bool) {
	v, loaded := s.PutIfAbsent(constants.CacheCasesKey, NormalizeCaseReference(reference), c)
	winner, _ := v.(*entity.CaseDraft)
	return winner, loaded
}

// GetUserIDByEmail resolves a cached user id by email.
func (s *Store) GetUserIDByEmail(email string) (uuid.UUID, bool) {
	v, ok := s.Get(constants.CacheUsersKey, strings.ToLower(strings.TrimSpace(email)))
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// SaveUser caches the email -> user id mapping.
func (s *Store) SaveUser(email string, id uuid.UUID) {
	s.Set(constants.CacheUsersKey, strings.ToLower(strings.TrimSpace(email)), id)
}

// PutUserIfAbsent atomically registers a user id for an email.
func (s *Store) PutUserIfAbsent(email string, id uuid.UUID) (uuid.UUID, bool) {
	v, loaded := s.PutIfAbsent(constants.CacheUsersKey, strings.ToLower(strings.TrimSpace(email)), id)
	winner, _ := v.(uuid.UUID)
	return winner, loaded
}

// ShareBookingExists reports whether a share was already created for this
// booking/recipient pair.
func (s *Store) ShareBookingExists(bookingID, userID uuid.UUID) bool {
	return s.Exists(constants.ShareBookingKey(bookingID.String(), userID.String()), "")
}

// MarkShareBooking records that a share exists for a booking/recipient
// pair; returns false when the pair was already marked.
func (s *Store) MarkShareBooking(bookingID, userID uuid.UUID) bool {
	_, loaded := s.PutIfAbsent(constants.ShareBookingKey(bookingID.String(), userID.String()), "", true)
	return !loaded
}

// GetCourtID resolves a cached court id by full court name.
func (s *Store) GetCourtID(name string) (uuid.UUID, bool) {
	v, ok := s.Get(constants.CacheCourtsKey, strings.ToUpper(strings.TrimSpace(name)))
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// SaveCourt caches the court name -> id mapping.
func (s *Store) SaveCourt(name string, id uuid.UUID) {
	s.Set(constants.CacheCourtsKey, strings.ToUpper(strings.TrimSpace(name)), id)
}

// SetSites installs the site-reference -> court-full-name map loaded from
// reference data.
func (s *Store) SetSites(sites map[string]string) {
	for ref, name := range sites {
		s.Set(constants.CacheSitesKey, strings.ToUpper(strings.TrimSpace(ref)), name)
	}
}

// SiteName resolves a site reference to a court full name.
func (s *Store) SiteName(ref string) (string, bool) {
	v, ok := s.Get(constants.CacheSitesKey, strings.ToUpper(strings.TrimSpace(ref)))
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

// SetChannelContacts installs the archive-name -> share contacts map loaded
// from reference data.
func (s *Store) SetChannelContacts(channels map[string][]entity.Contact) {
	for name, contacts := range channels {
		s.Set(constants.CacheChannelsKey, channelField(name), contacts)
	}
}

// ChannelContacts returns the share contacts registered for an archive name.
func (s *Store) ChannelContacts(archiveName string) []entity.Contact {
	v, ok := s.Get(constants.CacheChannelsKey, channelField(archiveName))
	if !ok {
		return nil
	}
	contacts, _ := v.([]entity.Contact)
	return contacts
}

func channelField(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
