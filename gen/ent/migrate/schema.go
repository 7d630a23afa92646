// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BookingsColumns holds the columns for the "bookings" table.
	BookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "scheduled_for", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeUUID},
	}
	// BookingsTable holds the schema information for the "bookings" table.
	BookingsTable = &schema.Table{
		Name:       "bookings",
		Columns:    BookingsColumns,
		PrimaryKey: []*schema.Column{BookingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bookings_cases_bookings",
				Columns:    []*schema.Column{BookingsColumns[4]},
				RefColumns: []*schema.Column{CasesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// CaptureSessionsColumns holds the columns for the "capture_sessions" table.
	CaptureSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_by", Type: field.TypeUUID, Nullable: true},
		{Name: "finished_by", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "origin", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "booking_id", Type: field.TypeUUID},
	}
	// CaptureSessionsTable holds the schema information for the "capture_sessions" table.
	CaptureSessionsTable = &schema.Table{
		Name:       "capture_sessions",
		Columns:    CaptureSessionsColumns,
		PrimaryKey: []*schema.Column{CaptureSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "capture_sessions_bookings_capture_sessions",
				Columns:    []*schema.Column{CaptureSessionsColumns[8]},
				RefColumns: []*schema.Column{BookingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// CourtsColumns holds the columns for the "courts" table.
	CourtsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CourtsTable holds the schema information for the "courts" table.
	CourtsTable = &schema.Table{
		Name:       "courts",
		Columns:    CourtsColumns,
		PrimaryKey: []*schema.Column{CourtsColumns[0]},
	}
	// CasesColumns holds the columns for the "cases" table.
	CasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "reference", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Default: "OPEN"},
		{Name: "origin", Type: field.TypeString},
		{Name: "test", Type: field.TypeBool, Default: false},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "court_id", Type: field.TypeUUID},
	}
	// CasesTable holds the schema information for the "cases" table.
	CasesTable = &schema.Table{
		Name:       "cases",
		Columns:    CasesColumns,
		PrimaryKey: []*schema.Column{CasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cases_courts_cases",
				Columns:    []*schema.Column{CasesColumns[8]},
				RefColumns: []*schema.Column{CourtsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "courtcase_reference_court_id",
				Unique:  true,
				Columns: []*schema.Column{CasesColumns[1], CasesColumns[8]},
			},
		},
	}
	// InvitesColumns holds the columns for the "invites" table.
	InvitesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "invited_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// InvitesTable holds the schema information for the "invites" table.
	InvitesTable = &schema.Table{
		Name:       "invites",
		Columns:    InvitesColumns,
		PrimaryKey: []*schema.Column{InvitesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invites_users_invites",
				Columns:    []*schema.Column{InvitesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ParticipantsColumns holds the columns for the "participants" table.
	ParticipantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "participant_type", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeUUID},
	}
	// ParticipantsTable holds the schema information for the "participants" table.
	ParticipantsTable = &schema.Table{
		Name:       "participants",
		Columns:    ParticipantsColumns,
		PrimaryKey: []*schema.Column{ParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "participants_cases_participants",
				Columns:    []*schema.Column{ParticipantsColumns[5]},
				RefColumns: []*schema.Column{CasesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// RecordingsColumns holds the columns for the "recordings" table.
	RecordingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "version", Type: field.TypeInt},
		{Name: "filename", Type: field.TypeString, Nullable: true},
		{Name: "duration", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "capture_session_id", Type: field.TypeUUID},
		{Name: "parent_recording_id", Type: field.TypeUUID, Nullable: true},
	}
	// RecordingsTable holds the schema information for the "recordings" table.
	RecordingsTable = &schema.Table{
		Name:       "recordings",
		Columns:    RecordingsColumns,
		PrimaryKey: []*schema.Column{RecordingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recordings_capture_sessions_recordings",
				Columns:    []*schema.Column{RecordingsColumns[5]},
				RefColumns: []*schema.Column{CaptureSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "recordings_recordings_children",
				Columns:    []*schema.Column{RecordingsColumns[6]},
				RefColumns: []*schema.Column{RecordingsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recording_capture_session_id_version",
				Unique:  false,
				Columns: []*schema.Column{RecordingsColumns[5], RecordingsColumns[1]},
			},
		},
	}
	// ShareBookingsColumns holds the columns for the "share_bookings" table.
	ShareBookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "shared_by_user_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "booking_id", Type: field.TypeUUID},
		{Name: "shared_with_user_id", Type: field.TypeUUID},
	}
	// ShareBookingsTable holds the schema information for the "share_bookings" table.
	ShareBookingsTable = &schema.Table{
		Name:       "share_bookings",
		Columns:    ShareBookingsColumns,
		PrimaryKey: []*schema.Column{ShareBookingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "share_bookings_bookings_shares",
				Columns:    []*schema.Column{ShareBookingsColumns[3]},
				RefColumns: []*schema.Column{BookingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "share_bookings_users_shares_received",
				Columns:    []*schema.Column{ShareBookingsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sharebooking_booking_id_shared_with_user_id",
				Unique:  true,
				Columns: []*schema.Column{ShareBookingsColumns[3], ShareBookingsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// BookingParticipantsColumns holds the columns for the "booking_participants" table.
	BookingParticipantsColumns = []*schema.Column{
		{Name: "booking_id", Type: field.TypeUUID},
		{Name: "participant_id", Type: field.TypeUUID},
	}
	// BookingParticipantsTable holds the schema information for the "booking_participants" table.
	BookingParticipantsTable = &schema.Table{
		Name:       "booking_participants",
		Columns:    BookingParticipantsColumns,
		PrimaryKey: []*schema.Column{BookingParticipantsColumns[0], BookingParticipantsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "booking_participants_booking_id",
				Columns:    []*schema.Column{BookingParticipantsColumns[0]},
				RefColumns: []*schema.Column{BookingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "booking_participants_participant_id",
				Columns:    []*schema.Column{BookingParticipantsColumns[1]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BookingsTable,
		CaptureSessionsTable,
		CourtsTable,
		CasesTable,
		InvitesTable,
		ParticipantsTable,
		RecordingsTable,
		ShareBookingsTable,
		UsersTable,
		BookingParticipantsTable,
	}
)

func init() {
	BookingsTable.ForeignKeys[0].RefTable = CasesTable
	BookingsTable.Annotation = &entsql.Annotation{
		Table: "bookings",
	}
	CaptureSessionsTable.ForeignKeys[0].RefTable = BookingsTable
	CaptureSessionsTable.Annotation = &entsql.Annotation{
		Table: "capture_sessions",
	}
	CourtsTable.Annotation = &entsql.Annotation{
		Table: "courts",
	}
	CasesTable.ForeignKeys[0].RefTable = CourtsTable
	CasesTable.Annotation = &entsql.Annotation{
		Table: "cases",
	}
	InvitesTable.ForeignKeys[0].RefTable = UsersTable
	InvitesTable.Annotation = &entsql.Annotation{
		Table: "invites",
	}
	ParticipantsTable.ForeignKeys[0].RefTable = CasesTable
	ParticipantsTable.Annotation = &entsql.Annotation{
		Table: "participants",
	}
	RecordingsTable.ForeignKeys[0].RefTable = CaptureSessionsTable
	RecordingsTable.ForeignKeys[1].RefTable = RecordingsTable
	RecordingsTable.Annotation = &entsql.Annotation{
		Table: "recordings",
	}
	ShareBookingsTable.ForeignKeys[0].RefTable = BookingsTable
	ShareBookingsTable.ForeignKeys[1].RefTable = UsersTable
	ShareBookingsTable.Annotation = &entsql.Annotation{
		Table: "share_bookings",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
	BookingParticipantsTable.ForeignKeys[0].RefTable = BookingsTable
	BookingParticipantsTable.ForeignKeys[1].RefTable = ParticipantsTable
}
