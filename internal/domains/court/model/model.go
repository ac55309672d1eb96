package model

const (
	TableName  = "court"
	EntityName = "court"
)

// Court is one bookable court. Open and Close are the legacy minute-of-day
// bounds kept for calendar sizing; the schedule tables are authoritative for
// availability.
type Court struct {
	ID     int64  `db:"id"`
	ClubID int64  `db:"club"`
	Name   string `db:"name"`
	State  int    `db:"state"`
	Open   int    `db:"openmin"`
	Close  int    `db:"closemin"`
}
