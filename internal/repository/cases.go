package repository

import (
	"context"
	"log/slog"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/gen/ent"
	"github.com/courtrec/archive-migrator/internal/entity"
)

// CaseRepository loads cases persisted by earlier migration runs.
type CaseRepository interface {
	ListAll(ctx context.Context) ([]*entity.CaseDraft, error)
}

type caseRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCaseRepository(client *ent.Client, logger *slog.Logger) CaseRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &caseRepository{client: client, logger: logger}
}

// ListAll returns every persisted case with its participants, mapped back
// to drafts so the run cache can resume where a previous run left off.
func (r *caseRepository) ListAll(ctx context.Context) ([]*entity.CaseDraft, error) {
	rows, err := r.client.CourtCase.Query().
		WithParticipants().
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list cases", "error", err)
		return nil, err
	}
	drafts := make([]*entity.CaseDraft, 0, len(rows))
	for _, row := range rows {
		drafts = append(drafts, toCaseDraft(row))
	}
	return drafts, nil
}

func toCaseDraft(row *ent.CourtCase) *entity.CaseDraft {
	draft := &entity.CaseDraft{
		ID:        row.ID,
		CourtID:   row.CourtID,
		Reference: row.Reference,
		State:     constants.CaseState(row.State),
		Origin:    row.Origin,
		Test:      row.Test,
		ClosedAt:  row.ClosedAt,
	}
	for _, p := range row.Edges.Participants {
		draft.Participants = append(draft.Participants, entity.Participant{
			ID:        p.ID,
			Type:      constants.ParticipantType(p.ParticipantType),
			FirstName: p.FirstName,
			LastName:  p.LastName,
		})
	}
	return draft
}
