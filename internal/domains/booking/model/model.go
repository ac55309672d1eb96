package model

import (
	"database/sql"
	"time"
)

const (
	TableName       = "activity"
	PlayerTableName = "player"
	EntityName      = "booking"
)

// Booking is one activity row. Rows are append-only: lifecycle transitions
// either flip active to 0 or deactivate-and-reinsert, never delete.
type Booking struct {
	ID              int64     `db:"id"`
	CourtID         int64     `db:"court"`
	Date            string    `db:"date"`
	Start           string    `db:"start"`
	End             string    `db:"end"`
	StartMin        int       `db:"start_min"`
	EndMin          int       `db:"end_min"`
	TypeID          int64     `db:"type"`
	BookingTypeDesc string    `db:"booking_type_desc"`
	Bumpable        int       `db:"bumpable"`
	Active          int       `db:"active"`
	Notes           string    `db:"notes"`
	Created         time.Time `db:"created"`
	Updated         time.Time `db:"updated"`
	Etag            string    `db:"etag"`

	Players []Player
}

type Player struct {
	ActivityID     int64         `db:"activity"`
	PersonID       int64         `db:"person_id"`
	PlayerTypeID   int64         `db:"player_type_id"`
	Status         int           `db:"status"`
	Firstname      string        `db:"firstname"`
	Lastname       string        `db:"lastname"`
	PlayerTypeLbl  string        `db:"player_type_lbl"`
	PlayerTypeDesc string        `db:"player_type_desc"`
	PersonRoleID   sql.NullInt64 `db:"person_role_id"`
}

// Snapshot is the flat evaluated record the permission engine runs on. All
// epoch fields are derived server-side from the club timezone; the request
// time is captured exactly once per operation.
type Snapshot struct {
	Booking

	UTCStart    int64
	UTCEnd      int64
	UTCDayStart int64
	UTCCreated  int64
	UTCUpdated  int64
	UTCReqTime  int64
	LocReqDate  int64
	LocReqTime  string
	NumericDate int64

	CourtOpen  int
	CourtClose int
	CourtState int
	CourtName  string
	TimeZone   string
	ClubID     int64

	// InSchedule reports whether the interval sits fully inside an open
	// schedule window for the court and weekday. Only candidate snapshots
	// carry a meaningful value.
	InSchedule bool

	Permissions []string
}

// Overlap is one conflicting booking from the lock-free probe.
type Overlap struct {
	ID        int64  `db:"id"`
	CourtID   int64  `db:"court_id"`
	CourtName string `db:"court_name"`
	Date      string `db:"date"`
	Start     string `db:"start"`
	End       string `db:"end"`
}

// NewBooking is a candidate assembled by the create flow or a move command,
// not yet persisted.
type NewBooking struct {
	CourtID  int64
	Date     string
	Start    string
	End      string
	TypeID   int64
	Bumpable int
	Notes    string
	Players  []NewPlayer
}

type NewPlayer struct {
	PersonID     int64
	PlayerTypeID int64
	MemberRoleID sql.NullInt64
}
