package model

import "database/sql"

const (
	TableName           = "person"
	MembershipTableName = "membership"
	EntityName          = "person"
)

type Person struct {
	ID        int64  `db:"id"`
	ClubID    int64  `db:"club"`
	Firstname string `db:"firstname"`
	Lastname  string `db:"lastname"`
	TypeID    int64  `db:"type"`
}

// Candidate is a person resolved for a booking, with the membership role
// valid on the booking date if any.
type Candidate struct {
	PersonID  int64         `db:"id"`
	Firstname string        `db:"firstname"`
	Lastname  string        `db:"lastname"`
	RoleID    sql.NullInt64 `db:"role"`
}
