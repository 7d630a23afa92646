// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Booking is the predicate function for booking builders.
type Booking func(*sql.Selector)

// CaptureSession is the predicate function for capturesession builders.
type CaptureSession func(*sql.Selector)

// Court is the predicate function for court builders.
type Court func(*sql.Selector)

// CourtCase is the predicate function for courtcase builders.
type CourtCase func(*sql.Selector)

// Invite is the predicate function for invite builders.
type Invite func(*sql.Selector)

// Participant is the predicate function for participant builders.
type Participant func(*sql.Selector)

// Recording is the predicate function for recording builders.
type Recording func(*sql.Selector)

// ShareBooking is the predicate function for sharebooking builders.
type ShareBooking func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
