package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/courtrec/archive-migrator/gen/ent"
	"github.com/courtrec/archive-migrator/gen/ent/user"
	"github.com/courtrec/archive-migrator/internal/entity"
)

// UserRepository looks up and creates share recipients.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.UserDraft, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDraft, bool, error)
	EnsureByEmail(ctx context.Context, draft entity.UserDraft) (uuid.UUID, error)
	ListAll(ctx context.Context) ([]*entity.UserDraft, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &userRepository{client: client, logger: logger}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.UserDraft, bool, error) {
	row, err := r.client.User.Query().
		Where(user.EmailEqualFold(strings.TrimSpace(email))).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("failed to query user by email", "error", err)
		return nil, false, err
	}
	return toUserDraft(row), true, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDraft, bool, error) {
	row, err := r.client.User.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("failed to query user by id", "id", id, "error", err)
		return nil, false, err
	}
	return toUserDraft(row), true, nil
}

// EnsureByEmail creates the user if no row exists for the email and
// returns the persisted id either way.
func (r *userRepository) EnsureByEmail(ctx context.Context, draft entity.UserDraft) (uuid.UUID, error) {
	existing, found, err := r.FindByEmail(ctx, draft.Email)
	if err != nil {
		return uuid.Nil, err
	}
	if found {
		return existing.ID, nil
	}

	row, err := r.client.User.Create().
		SetID(draft.ID).
		SetEmail(strings.ToLower(strings.TrimSpace(draft.Email))).
		SetFirstName(draft.FirstName).
		SetLastName(draft.LastName).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

// ListAll returns every persisted user. The migration preloads these into
// the run cache so share contacts resolve to existing accounts instead of
// synthesizing duplicates.
func (r *userRepository) ListAll(ctx context.Context) ([]*entity.UserDraft, error) {
	rows, err := r.client.User.Query().All(ctx)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	drafts := make([]*entity.UserDraft, 0, len(rows))
	for _, row := range rows {
		drafts = append(drafts, toUserDraft(row))
	}
	return drafts, nil
}

func toUserDraft(row *ent.User) *entity.UserDraft {
	return &entity.UserDraft{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
	}
}
