package migration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/courtrec/archive-migrator/internal/cache"
	"github.com/courtrec/archive-migrator/internal/entity"
)

// UserLister and CaseLister are the storage views the preloader reads.
type UserLister interface {
	ListAll(ctx context.Context) ([]*entity.UserDraft, error)
}

type CaseLister interface {
	ListAll(ctx context.Context) ([]*entity.CaseDraft, error)
}

// Preloader warms the run cache with entities persisted by earlier runs,
// so dedup decisions see the database state: share contacts resolve to
// existing users instead of synthesizing duplicate accounts, and COPY
// units whose originating case was migrated in a prior run are not
// misreported as orphans.
type Preloader struct {
	store  *cache.Store
	users  UserLister
	cases  CaseLister
	logger *slog.Logger
}

func NewPreloader(store *cache.Store, users UserLister, cases CaseLister, logger *slog.Logger) *Preloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preloader{store: store, users: users, cases: cases, logger: logger}
}

// Preload loads all persisted users and cases into the cache. A storage
// failure here is fatal: running with a cold cache would silently break
// the dedup guarantees.
func (p *Preloader) Preload(ctx context.Context) error {
	users, err := p.users.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("preload users: %w", err)
	}
	for _, u := range users {
		p.store.SaveUser(u.Email, u.ID)
	}

	cases, err := p.cases.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("preload cases: %w", err)
	}
	for _, c := range cases {
		p.store.SaveCase(c.Reference, c)
	}

	p.logger.Info("cache warmed from storage", "users", len(users), "cases", len(cases))
	return nil
}
