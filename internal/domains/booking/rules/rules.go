// Package rules implements the permission engine gating booking lifecycle
// actions. Each action owns an ordered list of pure predicates over a flat
// snapshot of server-derived epoch values. Every predicate in a list runs
// (no short-circuit); a non-empty reason list is a denial and callers report
// the first reason.
package rules

import (
	"fmt"

	"clubhouse/config"
	"clubhouse/internal/domains/booking/model"
	"clubhouse/shared/constant"
)

// Action is the closed set of booking lifecycle actions.
type Action int

const (
	ActionCreate Action = iota + 1
	ActionCancel
	ActionEnd
	ActionMove
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionCancel:
		return "cancel"
	case ActionEnd:
		return "end"
	case ActionMove:
		return "move"
	default:
		return "unknown"
	}
}

// MutationActions are the actions derivable as permission flags on a loaded
// booking, in reporting order.
var MutationActions = []Action{ActionCancel, ActionEnd, ActionMove}

// CreateSnapshot is the evaluated view of a candidate booking.
type CreateSnapshot struct {
	UTCStart    int64
	UTCEnd      int64
	UTCDayStart int64
	UTCReqTime  int64
	LocReqDate  int64
	NumericDate int64
	TypeID      int64
	CourtState  int
	InSchedule  bool
}

// CancelSnapshot is the evaluated view used by the cancel rule list.
type CancelSnapshot struct {
	Active     int
	UTCStart   int64
	UTCEnd     int64
	UTCCreated int64
	UTCReqTime int64
}

// EndSnapshot is the evaluated view used by the early-termination rule list.
type EndSnapshot struct {
	Active     int
	UTCStart   int64
	UTCEnd     int64
	UTCReqTime int64
}

// MoveSnapshot is the evaluated view used by time and court changes.
type MoveSnapshot struct {
	Active     int
	UTCEnd     int64
	UTCReqTime int64
}

type rule[S any] func(S) string

func runRules[S any](snapshot S, rules []rule[S]) []string {
	reasons := []string{}

	for _, r := range rules {
		if reason := r(snapshot); reason != constant.Empty {
			reasons = append(reasons, reason)
		}
	}

	return reasons
}

// Checker evaluates rule lists with the configured grace windows.
type Checker struct {
	minDurationSec  int64
	cancelWindowSec int64
	freshWindowSec  int64
	sameDayTypeID   int64
}

func NewChecker(cfg *config.Config) Checker {
	return Checker{
		minDurationSec:  int64(cfg.Booking.MinDurationMin) * constant.MinutesToSeconds,
		cancelWindowSec: int64(cfg.Booking.CancelWindowMin) * constant.MinutesToSeconds,
		freshWindowSec:  int64(cfg.Booking.FreshWindowMin) * constant.MinutesToSeconds,
		sameDayTypeID:   cfg.Booking.SameDayTypeID,
	}
}

// CheckCreate runs the create rule list on a candidate snapshot.
func (c Checker) CheckCreate(s CreateSnapshot) []string {
	return runRules(s, []rule[CreateSnapshot]{
		c.courtOpen,
		c.insideSchedule,
		c.sameDayBookedToday,
		c.startBeforeEnd,
		c.minDuration,
	})
}

// CheckCancel runs the cancel rule list.
func (c Checker) CheckCancel(s CancelSnapshot) []string {
	return runRules(s, []rule[CancelSnapshot]{
		c.cancelActive,
		c.cancelTimeframe,
	})
}

// CheckEnd runs the early-termination rule list.
func (c Checker) CheckEnd(s EndSnapshot) []string {
	return runRules(s, []rule[EndSnapshot]{
		c.endActive,
		c.ongoing,
		c.notFresh,
	})
}

// CheckMove runs the move rule list.
func (c Checker) CheckMove(s MoveSnapshot) []string {
	return runRules(s, []rule[MoveSnapshot]{
		c.moveActive,
		c.notEnded,
	})
}

// Check dispatches a mutation action against a loaded booking snapshot.
func (c Checker) Check(action Action, snapshot model.Snapshot) []string {
	switch action {
	case ActionCancel:
		return c.CheckCancel(CancelView(snapshot))
	case ActionEnd:
		return c.CheckEnd(EndView(snapshot))
	case ActionMove:
		return c.CheckMove(MoveView(snapshot))
	case ActionCreate:
		return c.CheckCreate(CreateView(snapshot))
	default:
		return []string{"unsupported action"}
	}
}

func (c Checker) courtOpen(s CreateSnapshot) string {
	if s.CourtState == constant.CourtStateClosed {
		return "Court closed"
	}

	return constant.Empty
}

func (c Checker) insideSchedule(s CreateSnapshot) string {
	if !s.InSchedule {
		return "Booking must fall within an open court schedule window"
	}

	return constant.Empty
}

func (c Checker) sameDayBookedToday(s CreateSnapshot) string {
	if s.TypeID == c.sameDayTypeID && s.LocReqDate != s.NumericDate {
		return "Matches must be booked for today"
	}

	return constant.Empty
}

func (c Checker) startBeforeEnd(s CreateSnapshot) string {
	if s.UTCStart >= s.UTCEnd {
		return "Session must start before ending"
	}

	return constant.Empty
}

func (c Checker) minDuration(s CreateSnapshot) string {
	if s.UTCEnd-s.UTCStart < c.minDurationSec {
		return fmt.Sprintf("Session must be at least %d minutes long", c.minDurationSec/constant.MinutesToSeconds)
	}

	return constant.Empty
}

func (c Checker) cancelActive(s CancelSnapshot) string {
	return mustBeActive(s.Active)
}

// cancelTimeframe reproduces the cancellation windows:
// ended sessions and retroactively logged ongoing sessions are cancellable
// only within the cancel window of creation; ongoing sessions booked ahead
// of time only within the fresh window of their start; future sessions always.
func (c Checker) cancelTimeframe(s CancelSnapshot) string {
	if s.UTCEnd < s.UTCReqTime {
		if s.UTCCreated+c.cancelWindowSec <= s.UTCReqTime {
			return "Sessions that have ended can be cancelled within 5 minutes of creation time"
		}

		return constant.Empty
	}

	if s.UTCStart < s.UTCReqTime {
		if s.UTCStart < s.UTCCreated {
			if s.UTCCreated+c.cancelWindowSec <= s.UTCReqTime {
				return "Ongoing bookings can be cancelled within 5 minutes of creation time"
			}

			return constant.Empty
		}

		if s.UTCStart+c.freshWindowSec <= s.UTCReqTime {
			return "Unable to cancel ongoing booking"
		}

		return constant.Empty
	}

	return constant.Empty
}

func (c Checker) endActive(s EndSnapshot) string {
	return mustBeActive(s.Active)
}

func (c Checker) ongoing(s EndSnapshot) string {
	if s.UTCReqTime < s.UTCEnd && s.UTCReqTime >= s.UTCStart {
		return constant.Empty
	}

	return "Booking must be ongoing"
}

// notFresh rejects ending a session moments after it began.
func (c Checker) notFresh(s EndSnapshot) string {
	if s.UTCStart+c.freshWindowSec <= s.UTCReqTime {
		return constant.Empty
	}

	return "Booking too fresh"
}

func (c Checker) moveActive(s MoveSnapshot) string {
	return mustBeActive(s.Active)
}

func (c Checker) notEnded(s MoveSnapshot) string {
	if s.UTCEnd < s.UTCReqTime {
		return "Booking has ended"
	}

	return constant.Empty
}

func mustBeActive(active int) string {
	if active == constant.BookingActive {
		return constant.Empty
	}

	return "Booking must be active"
}

// CreateView projects a full snapshot onto the create rule inputs.
func CreateView(s model.Snapshot) CreateSnapshot {
	return CreateSnapshot{
		UTCStart:    s.UTCStart,
		UTCEnd:      s.UTCEnd,
		UTCDayStart: s.UTCDayStart,
		UTCReqTime:  s.UTCReqTime,
		LocReqDate:  s.LocReqDate,
		NumericDate: s.NumericDate,
		TypeID:      s.TypeID,
		CourtState:  s.CourtState,
		InSchedule:  s.InSchedule,
	}
}

func CancelView(s model.Snapshot) CancelSnapshot {
	return CancelSnapshot{
		Active:     s.Active,
		UTCStart:   s.UTCStart,
		UTCEnd:     s.UTCEnd,
		UTCCreated: s.UTCCreated,
		UTCReqTime: s.UTCReqTime,
	}
}

func EndView(s model.Snapshot) EndSnapshot {
	return EndSnapshot{
		Active:     s.Active,
		UTCStart:   s.UTCStart,
		UTCEnd:     s.UTCEnd,
		UTCReqTime: s.UTCReqTime,
	}
}

func MoveView(s model.Snapshot) MoveSnapshot {
	return MoveSnapshot{
		Active:     s.Active,
		UTCEnd:     s.UTCEnd,
		UTCReqTime: s.UTCReqTime,
	}
}
