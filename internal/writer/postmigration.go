package writer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/courtrec/archive-migrator/gen/ent"
	"github.com/courtrec/archive-migrator/gen/ent/invite"
	"github.com/courtrec/archive-migrator/gen/ent/sharebooking"
	"github.com/courtrec/archive-migrator/gen/ent/user"
	"github.com/courtrec/archive-migrator/internal/entity"
	"github.com/courtrec/archive-migrator/internal/migration"
	"github.com/courtrec/archive-migrator/internal/notify"
	"github.com/courtrec/archive-migrator/internal/repository"
)

// PostMigrationProcessor persists invites and share bookings after the
// main writer pass, when the bookings and users they reference exist. Each
// side effect runs in its own transaction and failures never stop the
// rest.
type PostMigrationProcessor struct {
	client   *ent.Client
	users    repository.UserRepository
	notifier notify.Notifier
	tracker  migration.Tracker
	logger   *slog.Logger
}

func NewPostMigrationProcessor(client *ent.Client, users repository.UserRepository, notifier notify.Notifier, tracker migration.Tracker, logger *slog.Logger) *PostMigrationProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	return &PostMigrationProcessor{
		client:   client,
		users:    users,
		notifier: notifier,
		tracker:  tracker,
		logger:   logger,
	}
}

// ProcessOneItem persists one unit's invites then share bookings. Returns
// false when any persistence step failed; the failures themselves are
// captured as structured tracker entries.
func (p *PostMigrationProcessor) ProcessOneItem(ctx context.Context, group entity.PostMigrationGroup) bool {
	ok := true
	for _, inv := range group.Invites {
		if !p.processInvite(ctx, inv) {
			ok = false
		}
	}
	for _, share := range group.ShareBookings {
		if !p.processShare(ctx, share, group.Invites) {
			ok = false
		}
	}
	return ok
}

func (p *PostMigrationProcessor) processInvite(ctx context.Context, inv entity.InviteDraft) bool {
	err := withTx(ctx, p.client, func(tx *ent.Tx) error {
		if err := p.ensureUser(ctx, tx, inv); err != nil {
			return err
		}
		exists, err := tx.Invite.Query().Where(invite.UserID(inv.UserID)).Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		return tx.Invite.Create().
			SetUserID(inv.UserID).
			SetEmail(inv.Email).
			SetFirstName(inv.FirstName).
			SetLastName(inv.LastName).
			Exec(ctx)
	})
	if err != nil {
		p.logger.Error("failed to persist invite", "email", inv.Email, "error", err)
		p.tracker.RecordPostMigrationFailure(migration.PostMigrationFailure{
			EntityType: "invite",
			Identifier: inv.UserID.String(),
			Email:      inv.Email,
			Action:     "create",
			Reason:     err.Error(),
			Timestamp:  time.Now().UTC(),
		})
		return false
	}

	p.tracker.RecordInvite(inv.Email)

	// The invite already succeeded at the data level; notification failure
	// is logged and swallowed.
	if err := p.notifier.SendInvite(ctx, inv); err != nil {
		p.logger.Warn("invite notification failed", "email", inv.Email, "error", err)
	}
	return true
}

func (p *PostMigrationProcessor) ensureUser(ctx context.Context, tx *ent.Tx, inv entity.InviteDraft) error {
	exists, err := tx.User.Query().
		Where(user.EmailEqualFold(strings.TrimSpace(inv.Email))).
		Exist(ctx)
	if err != nil || exists {
		return err
	}
	return tx.User.Create().
		SetID(inv.UserID).
		SetEmail(strings.ToLower(strings.TrimSpace(inv.Email))).
		SetFirstName(inv.FirstName).
		SetLastName(inv.LastName).
		Exec(ctx)
}

func (p *PostMigrationProcessor) processShare(ctx context.Context, share entity.ShareBookingDraft, invites []entity.InviteDraft) bool {
	err := withTx(ctx, p.client, func(tx *ent.Tx) error {
		exists, err := tx.ShareBooking.Query().
			Where(
				sharebooking.BookingID(share.BookingID),
				sharebooking.SharedWithUserID(share.SharedWithUser),
			).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		return tx.ShareBooking.Create().
			SetID(share.ID).
			SetBookingID(share.BookingID).
			SetSharedWithUserID(share.SharedWithUser).
			SetSharedByUserID(share.SharedByUser).
			Exec(ctx)
	})

	email := p.resolveEmail(ctx, share.SharedWithUser, invites)
	if err != nil {
		p.logger.Error("failed to persist share booking",
			"booking_id", share.BookingID, "user_id", share.SharedWithUser, "error", err)
		p.tracker.RecordPostMigrationFailure(migration.PostMigrationFailure{
			EntityType: "share_booking",
			Identifier: share.ID.String(),
			Email:      email,
			Action:     "create",
			Reason:     err.Error(),
			Timestamp:  time.Now().UTC(),
		})
		return false
	}

	p.tracker.RecordShareBooking(share.BookingID.String(), email)
	return true
}

// resolveEmail is for reporting only: the in-flight invite list first,
// then persisted user storage.
func (p *PostMigrationProcessor) resolveEmail(ctx context.Context, userID uuid.UUID, invites []entity.InviteDraft) string {
	for _, inv := range invites {
		if inv.UserID == userID {
			return inv.Email
		}
	}
	if u, found, err := p.users.FindByID(ctx, userID); err == nil && found {
		return u.Email
	}
	return ""
}
