package model

const (
	TableName     = "club_schedule"
	ItemTableName = "court_schedule_item"
	EntityName    = "schedule"
)

// Schedule is a weekly open-time definition valid over a date range. Several
// schedules may be valid at once; the engine merges the items of all of them.
type Schedule struct {
	ID     int64  `db:"id"`
	ClubID int64  `db:"club"`
	Name   string `db:"name"`
	From   string `db:"from"`
	To     string `db:"to"`

	Items []ScheduleItem
}

// ScheduleItem opens one court for one weekday. Weekday numbering is
// 1=Sunday through 7=Saturday.
type ScheduleItem struct {
	ID         int64  `db:"id"`
	ScheduleID int64  `db:"schedule"`
	CourtID    int64  `db:"court"`
	Weekday    int    `db:"dayofweek"`
	OpenMin    int    `db:"open_min"`
	CloseMin   int    `db:"close_min"`
	Message    string `db:"message"`
}

// OpenWindow is the engine's input shape, one open interval on one court.
type OpenWindow struct {
	CourtID  int64 `db:"court"`
	OpenMin  int   `db:"open_min"`
	CloseMin int   `db:"close_min"`
}

// ClosedFrame is one blocked interval the calendar renders as unavailable.
type ClosedFrame struct {
	CourtID  int64
	StartMin int
	EndMin   int
}
