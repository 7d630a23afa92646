// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/courtrec/archive-migrator/db/ent/schema"
	"github.com/courtrec/archive-migrator/gen/ent/booking"
	"github.com/courtrec/archive-migrator/gen/ent/capturesession"
	"github.com/courtrec/archive-migrator/gen/ent/court"
	"github.com/courtrec/archive-migrator/gen/ent/courtcase"
	"github.com/courtrec/archive-migrator/gen/ent/invite"
	"github.com/courtrec/archive-migrator/gen/ent/participant"
	"github.com/courtrec/archive-migrator/gen/ent/recording"
	"github.com/courtrec/archive-migrator/gen/ent/sharebooking"
	"github.com/courtrec/archive-migrator/gen/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bookingFields := schema.Booking{}.Fields()
	_ = bookingFields
	// bookingDescCreatedAt is the schema descriptor for created_at field.
	bookingDescCreatedAt := bookingFields[3].Descriptor()
	// booking.DefaultCreatedAt holds the default value on creation for the created_at field.
	booking.DefaultCreatedAt = bookingDescCreatedAt.Default.(func() time.Time)
	// bookingDescUpdatedAt is the schema descriptor for updated_at field.
	bookingDescUpdatedAt := bookingFields[4].Descriptor()
	// booking.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	booking.DefaultUpdatedAt = bookingDescUpdatedAt.Default.(func() time.Time)
	// booking.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	booking.UpdateDefaultUpdatedAt = bookingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bookingDescID is the schema descriptor for id field.
	bookingDescID := bookingFields[0].Descriptor()
	// booking.DefaultID holds the default value on creation for the id field.
	booking.DefaultID = bookingDescID.Default.(func() uuid.UUID)
	capturesessionFields := schema.CaptureSession{}.Fields()
	_ = capturesessionFields
	// capturesessionDescStatus is the schema descriptor for status field.
	capturesessionDescStatus := capturesessionFields[6].Descriptor()
	// capturesession.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	capturesession.StatusValidator = capturesessionDescStatus.Validators[0].(func(string) error)
	// capturesessionDescOrigin is the schema descriptor for origin field.
	capturesessionDescOrigin := capturesessionFields[7].Descriptor()
	// capturesession.OriginValidator is a validator for the "origin" field. It is called by the builders before save.
	capturesession.OriginValidator = capturesessionDescOrigin.Validators[0].(func(string) error)
	// capturesessionDescCreatedAt is the schema descriptor for created_at field.
	capturesessionDescCreatedAt := capturesessionFields[8].Descriptor()
	// capturesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	capturesession.DefaultCreatedAt = capturesessionDescCreatedAt.Default.(func() time.Time)
	// capturesessionDescID is the schema descriptor for id field.
	capturesessionDescID := capturesessionFields[0].Descriptor()
	// capturesession.DefaultID holds the default value on creation for the id field.
	capturesession.DefaultID = capturesessionDescID.Default.(func() uuid.UUID)
	courtFields := schema.Court{}.Fields()
	_ = courtFields
	// courtDescName is the schema descriptor for name field.
	courtDescName := courtFields[1].Descriptor()
	// court.NameValidator is a validator for the "name" field. It is called by the builders before save.
	court.NameValidator = courtDescName.Validators[0].(func(string) error)
	// courtDescCreatedAt is the schema descriptor for created_at field.
	courtDescCreatedAt := courtFields[2].Descriptor()
	// court.DefaultCreatedAt holds the default value on creation for the created_at field.
	court.DefaultCreatedAt = courtDescCreatedAt.Default.(func() time.Time)
	// courtDescID is the schema descriptor for id field.
	courtDescID := courtFields[0].Descriptor()
	// court.DefaultID holds the default value on creation for the id field.
	court.DefaultID = courtDescID.Default.(func() uuid.UUID)
	courtcaseFields := schema.CourtCase{}.Fields()
	_ = courtcaseFields
	// courtcaseDescReference is the schema descriptor for reference field.
	courtcaseDescReference := courtcaseFields[2].Descriptor()
	// courtcase.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	courtcase.ReferenceValidator = courtcaseDescReference.Validators[0].(func(string) error)
	// courtcaseDescState is the schema descriptor for state field.
	courtcaseDescState := courtcaseFields[3].Descriptor()
	// courtcase.DefaultState holds the default value on creation for the state field.
	courtcase.DefaultState = courtcaseDescState.Default.(string)
	// courtcase.StateValidator is a validator for the "state" field. It is called by the builders before save.
	courtcase.StateValidator = courtcaseDescState.Validators[0].(func(string) error)
	// courtcaseDescOrigin is the schema descriptor for origin field.
	courtcaseDescOrigin := courtcaseFields[4].Descriptor()
	// courtcase.OriginValidator is a validator for the "origin" field. It is called by the builders before save.
	courtcase.OriginValidator = courtcaseDescOrigin.Validators[0].(func(string) error)
	// courtcaseDescTest is the schema descriptor for test field.
	courtcaseDescTest := courtcaseFields[5].Descriptor()
	// courtcase.DefaultTest holds the default value on creation for the test field.
	courtcase.DefaultTest = courtcaseDescTest.Default.(bool)
	// courtcaseDescCreatedAt is the schema descriptor for created_at field.
	courtcaseDescCreatedAt := courtcaseFields[7].Descriptor()
	// courtcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	courtcase.DefaultCreatedAt = courtcaseDescCreatedAt.Default.(func() time.Time)
	// courtcaseDescUpdatedAt is the schema descriptor for updated_at field.
	courtcaseDescUpdatedAt := courtcaseFields[8].Descriptor()
	// courtcase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	courtcase.DefaultUpdatedAt = courtcaseDescUpdatedAt.Default.(func() time.Time)
	// courtcase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	courtcase.UpdateDefaultUpdatedAt = courtcaseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// courtcaseDescID is the schema descriptor for id field.
	courtcaseDescID := courtcaseFields[0].Descriptor()
	// courtcase.DefaultID holds the default value on creation for the id field.
	courtcase.DefaultID = courtcaseDescID.Default.(func() uuid.UUID)
	inviteFields := schema.Invite{}.Fields()
	_ = inviteFields
	// inviteDescEmail is the schema descriptor for email field.
	inviteDescEmail := inviteFields[2].Descriptor()
	// invite.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	invite.EmailValidator = inviteDescEmail.Validators[0].(func(string) error)
	// inviteDescInvitedAt is the schema descriptor for invited_at field.
	inviteDescInvitedAt := inviteFields[5].Descriptor()
	// invite.DefaultInvitedAt holds the default value on creation for the invited_at field.
	invite.DefaultInvitedAt = inviteDescInvitedAt.Default.(func() time.Time)
	// inviteDescID is the schema descriptor for id field.
	inviteDescID := inviteFields[0].Descriptor()
	// invite.DefaultID holds the default value on creation for the id field.
	invite.DefaultID = inviteDescID.Default.(func() uuid.UUID)
	participantFields := schema.Participant{}.Fields()
	_ = participantFields
	// participantDescParticipantType is the schema descriptor for participant_type field.
	participantDescParticipantType := participantFields[2].Descriptor()
	// participant.ParticipantTypeValidator is a validator for the "participant_type" field. It is called by the builders before save.
	participant.ParticipantTypeValidator = func() func(string) error {
		validators := participantDescParticipantType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(participant_type string) error {
			for _, fn := range fns {
				if err := fn(participant_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// participantDescCreatedAt is the schema descriptor for created_at field.
	participantDescCreatedAt := participantFields[5].Descriptor()
	// participant.DefaultCreatedAt holds the default value on creation for the created_at field.
	participant.DefaultCreatedAt = participantDescCreatedAt.Default.(func() time.Time)
	// participantDescID is the schema descriptor for id field.
	participantDescID := participantFields[0].Descriptor()
	// participant.DefaultID holds the default value on creation for the id field.
	participant.DefaultID = participantDescID.Default.(func() uuid.UUID)
	recordingFields := schema.Recording{}.Fields()
	_ = recordingFields
	// recordingDescVersion is the schema descriptor for version field.
	recordingDescVersion := recordingFields[3].Descriptor()
	// recording.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	recording.VersionValidator = recordingDescVersion.Validators[0].(func(int) error)
	// recordingDescDuration is the schema descriptor for duration field.
	recordingDescDuration := recordingFields[5].Descriptor()
	// recording.DefaultDuration holds the default value on creation for the duration field.
	recording.DefaultDuration = recordingDescDuration.Default.(int)
	// recording.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	recording.DurationValidator = recordingDescDuration.Validators[0].(func(int) error)
	// recordingDescCreatedAt is the schema descriptor for created_at field.
	recordingDescCreatedAt := recordingFields[6].Descriptor()
	// recording.DefaultCreatedAt holds the default value on creation for the created_at field.
	recording.DefaultCreatedAt = recordingDescCreatedAt.Default.(func() time.Time)
	// recordingDescID is the schema descriptor for id field.
	recordingDescID := recordingFields[0].Descriptor()
	// recording.DefaultID holds the default value on creation for the id field.
	recording.DefaultID = recordingDescID.Default.(func() uuid.UUID)
	sharebookingFields := schema.ShareBooking{}.Fields()
	_ = sharebookingFields
	// sharebookingDescCreatedAt is the schema descriptor for created_at field.
	sharebookingDescCreatedAt := sharebookingFields[4].Descriptor()
	// sharebooking.DefaultCreatedAt holds the default value on creation for the created_at field.
	sharebooking.DefaultCreatedAt = sharebookingDescCreatedAt.Default.(func() time.Time)
	// sharebookingDescID is the schema descriptor for id field.
	sharebookingDescID := sharebookingFields[0].Descriptor()
	// sharebooking.DefaultID holds the default value on creation for the id field.
	sharebooking.DefaultID = sharebookingDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
