package dto

import (
	"encoding/json"

	"clubhouse/internal/domains/booking/model"
)

type CreatePlayerRequest struct {
	PersonID     int64 `json:"person_id"     validate:"required"`
	PlayerTypeID int64 `json:"player_type_id" validate:"required"`
}

type CreateBookingRequest struct {
	CourtID       int64                 `json:"court_id"        validate:"required"`
	Date          string                `json:"date"            validate:"required,datetime=2006-01-02"`
	Start         string                `json:"start"           validate:"required,hourmin"`
	End           string                `json:"end"             validate:"required,hourmin"`
	BookingTypeID int64                 `json:"booking_type_id" validate:"required"`
	Bumpable      int                   `json:"bumpable"        validate:"oneof=0 1"`
	Notes         string                `json:"notes"           validate:"omitempty,max=255"`
	Players       []CreatePlayerRequest `json:"players"         validate:"required,min=1,max=4,dive"`
}

type CreateBookingResponse struct {
	ID int64 `json:"id"`
}

type PlayerResponse struct {
	PersonID       int64  `json:"person_id"`
	Firstname      string `json:"firstname"`
	Lastname       string `json:"lastname"`
	PlayerTypeID   int64  `json:"player_type_id"`
	PlayerTypeDesc string `json:"player_type_desc"`
	Status         int    `json:"status"`
}

type BookingResponse struct {
	ID              int64            `json:"id"`
	CourtID         int64            `json:"court_id"`
	CourtName       string           `json:"court_name,omitempty"`
	Date            string           `json:"date"`
	Start           string           `json:"start"`
	End             string           `json:"end"`
	StartMin        int              `json:"start_min,omitempty"`
	EndMin          int              `json:"end_min,omitempty"`
	BookingTypeID   int64            `json:"booking_type_id"`
	BookingTypeDesc string           `json:"booking_type_desc"`
	Bumpable        int              `json:"bumpable"`
	Notes           string           `json:"notes"`
	Etag            string           `json:"etag"`
	UTCStart        int64            `json:"utc_start,omitempty"`
	UTCEnd          int64            `json:"utc_end,omitempty"`
	UTCReqTime      int64            `json:"utc_req_time,omitempty"`
	Permissions     []string         `json:"permissions,omitempty"`
	Players         []PlayerResponse `json:"players"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.CourtID = booking.CourtID
	r.Date = booking.Date
	r.Start = booking.Start
	r.End = booking.End
	r.StartMin = booking.StartMin
	r.EndMin = booking.EndMin
	r.BookingTypeID = booking.TypeID
	r.BookingTypeDesc = booking.BookingTypeDesc
	r.Bumpable = booking.Bumpable
	r.Notes = booking.Notes
	r.Etag = booking.Etag

	r.Players = make([]PlayerResponse, len(booking.Players))
	for i, player := range booking.Players {
		r.Players[i] = PlayerResponse{
			PersonID:       player.PersonID,
			Firstname:      player.Firstname,
			Lastname:       player.Lastname,
			PlayerTypeID:   player.PlayerTypeID,
			PlayerTypeDesc: player.PlayerTypeDesc,
			Status:         player.Status,
		}
	}
}

func (r *BookingResponse) FromSnapshot(snapshot model.Snapshot) {
	r.FromModel(snapshot.Booking)
	r.CourtName = snapshot.CourtName
	r.UTCStart = snapshot.UTCStart
	r.UTCEnd = snapshot.UTCEnd
	r.UTCReqTime = snapshot.UTCReqTime
	r.Permissions = snapshot.Permissions
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// PatchCommand is the outer lifecycle-command envelope. Params stay raw until
// the command registry resolves the name to its own parameter schema.
type PatchCommand struct {
	Name   string          `json:"name"   validate:"required"`
	Params json.RawMessage `json:"params" validate:"required"`
}

type EndSessionParams struct {
	Etag string `json:"etag" validate:"required,etag"`
}

type RemoveSessionParams struct {
	Etag string `json:"etag" validate:"required,etag"`
}

type ChangeTimeParams struct {
	Etag  string `json:"etag"  validate:"required,etag"`
	Start string `json:"start" validate:"required,hourmin"`
	End   string `json:"end"   validate:"required,hourmin"`
}

type ChangeCourtParams struct {
	Etag  string `json:"etag"  validate:"required,etag"`
	Court int64  `json:"court" validate:"required"`
}

// PatchBookingResponse carries the affected calendar date so callers can
// invalidate their day views.
type PatchBookingResponse struct {
	Date string `json:"date"`
}

type OverlapResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	End       string `json:"end"`
	CourtID   int64  `json:"court_id"`
	CourtName string `json:"court_name"`
}
