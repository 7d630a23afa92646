package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/courtrec/archive-migrator/gen/ent"
	"github.com/courtrec/archive-migrator/gen/ent/court"
)

// CourtRepository resolves court identities by full name.
type CourtRepository interface {
	FindIDByName(ctx context.Context, name string) (uuid.UUID, bool, error)
}

type courtRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCourtRepository(client *ent.Client, logger *slog.Logger) CourtRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &courtRepository{client: client, logger: logger}
}

func (r *courtRepository) FindIDByName(ctx context.Context, name string) (uuid.UUID, bool, error) {
	row, err := r.client.Court.Query().
		Where(court.NameEqualFold(name)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		r.logger.Error("failed to query court", "name", name, "error", err)
		return uuid.Nil, false, err
	}
	return row.ID, true, nil
}
