package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubhouse/config"
	"clubhouse/internal/domains/booking/model"
	"clubhouse/internal/domains/booking/rules"
)

func testChecker() rules.Checker {
	cfg := &config.Config{}
	cfg.Booking.MinDurationMin = 5
	cfg.Booking.CancelWindowMin = 5
	cfg.Booking.FreshWindowMin = 5
	cfg.Booking.SameDayTypeID = 1000

	return rules.NewChecker(cfg)
}

const (
	minute = int64(60)
	hour   = 60 * minute
)

func TestChecker_CheckCreate(t *testing.T) {
	checker := testChecker()

	base := rules.CreateSnapshot{
		UTCStart:    1000 * hour,
		UTCEnd:      1001 * hour,
		UTCDayStart: 999 * hour,
		UTCReqTime:  999 * hour,
		LocReqDate:  20260831,
		NumericDate: 20260831,
		TypeID:      1,
		CourtState:  1,
		InSchedule:  true,
	}

	tests := []struct {
		name     string
		mutate   func(s *rules.CreateSnapshot)
		want     []string
		wantPass bool
	}{
		{
			name:     "valid candidate passes every rule",
			mutate:   func(s *rules.CreateSnapshot) {},
			wantPass: true,
		},
		{
			name:   "closed court",
			mutate: func(s *rules.CreateSnapshot) { s.CourtState = 0 },
			want:   []string{"Court closed"},
		},
		{
			name:   "outside schedule window",
			mutate: func(s *rules.CreateSnapshot) { s.InSchedule = false },
			want:   []string{"Booking must fall within an open court schedule window"},
		},
		{
			name: "same-day type on another date",
			mutate: func(s *rules.CreateSnapshot) {
				s.TypeID = 1000
				s.NumericDate = 20260901
			},
			want: []string{"Matches must be booked for today"},
		},
		{
			name:     "same-day type on the request date passes",
			mutate:   func(s *rules.CreateSnapshot) { s.TypeID = 1000 },
			wantPass: true,
		},
		{
			name: "start equal to end",
			mutate: func(s *rules.CreateSnapshot) {
				s.UTCEnd = s.UTCStart
			},
			want: []string{
				"Session must start before ending",
				"Session must be at least 5 minutes long",
			},
		},
		{
			name: "start after end",
			mutate: func(s *rules.CreateSnapshot) {
				s.UTCEnd = s.UTCStart - hour
			},
			want: []string{
				"Session must start before ending",
				"Session must be at least 5 minutes long",
			},
		},
		{
			name: "three minute session",
			mutate: func(s *rules.CreateSnapshot) {
				s.UTCEnd = s.UTCStart + 3*minute
			},
			want: []string{"Session must be at least 5 minutes long"},
		},
		{
			name: "exactly five minutes passes",
			mutate: func(s *rules.CreateSnapshot) {
				s.UTCEnd = s.UTCStart + 5*minute
			},
			wantPass: true,
		},
		{
			name: "every rule can fail at once",
			mutate: func(s *rules.CreateSnapshot) {
				s.CourtState = 0
				s.InSchedule = false
				s.TypeID = 1000
				s.NumericDate = 20260901
				s.UTCEnd = s.UTCStart
			},
			want: []string{
				"Court closed",
				"Booking must fall within an open court schedule window",
				"Matches must be booked for today",
				"Session must start before ending",
				"Session must be at least 5 minutes long",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := base
			tt.mutate(&snapshot)

			reasons := checker.CheckCreate(snapshot)

			if tt.wantPass {
				assert.Empty(t, reasons)
			} else {
				assert.Equal(t, tt.want, reasons)
			}
		})
	}
}

func TestChecker_CheckCancel(t *testing.T) {
	checker := testChecker()

	tests := []struct {
		name     string
		snapshot rules.CancelSnapshot
		want     []string
		wantPass bool
	}{
		{
			name: "inactive booking",
			snapshot: rules.CancelSnapshot{
				Active:     0,
				UTCStart:   200 * hour,
				UTCEnd:     201 * hour,
				UTCCreated: 100 * hour,
				UTCReqTime: 100 * hour,
			},
			want: []string{"Booking must be active"},
		},
		{
			name: "future booking always cancellable",
			snapshot: rules.CancelSnapshot{
				Active:     1,
				UTCStart:   200 * hour,
				UTCEnd:     201 * hour,
				UTCCreated: 100 * hour,
				UTCReqTime: 150 * hour,
			},
			wantPass: true,
		},
		{
			name: "ended twenty minutes after creation",
			snapshot: rules.CancelSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     101 * hour,
				UTCCreated: 100 * hour,
				UTCReqTime: 101*hour + 20*minute,
			},
			want: []string{"Sessions that have ended can be cancelled within 5 minutes of creation time"},
		},
		{
			name: "ended but logged moments ago",
			snapshot: rules.CancelSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     101 * hour,
				UTCCreated: 101*hour + 10*minute,
				UTCReqTime: 101*hour + 12*minute,
			},
			wantPass: true,
		},
		{
			name: "retro-logged ongoing inside creation window",
			snapshot: rules.CancelSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     102 * hour,
				UTCCreated: 100*hour + 30*minute,
				UTCReqTime: 100*hour + 33*minute,
			},
			wantPass: true,
		},
		{
			name: "retro-logged ongoing past creation window",
			snapshot: rules.CancelSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     102 * hour,
				UTCCreated: 100*hour + 30*minute,
				UTCReqTime: 100*hour + 36*minute,
			},
			want: []string{"Ongoing bookings can be cancelled within 5 minutes of creation time"},
		},
		{
			name: "pre-booked ongoing inside freshness window",
			snapshot: rules.CancelSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     102 * hour,
				UTCCreated: 90 * hour,
				UTCReqTime: 100*hour + 4*minute,
			},
			wantPass: true,
		},
		{
			name: "pre-booked ongoing past freshness window",
			snapshot: rules.CancelSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     102 * hour,
				UTCCreated: 90 * hour,
				UTCReqTime: 100*hour + 5*minute,
			},
			want: []string{"Unable to cancel ongoing booking"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasons := checker.CheckCancel(tt.snapshot)

			if tt.wantPass {
				assert.Empty(t, reasons)
			} else {
				assert.Equal(t, tt.want, reasons)
			}
		})
	}
}

func TestChecker_CheckEnd(t *testing.T) {
	checker := testChecker()

	tests := []struct {
		name     string
		snapshot rules.EndSnapshot
		want     []string
		wantPass bool
	}{
		{
			name: "ongoing mature session",
			snapshot: rules.EndSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     102 * hour,
				UTCReqTime: 101 * hour,
			},
			wantPass: true,
		},
		{
			name: "inactive",
			snapshot: rules.EndSnapshot{
				Active:     0,
				UTCStart:   100 * hour,
				UTCEnd:     102 * hour,
				UTCReqTime: 101 * hour,
			},
			want: []string{"Booking must be active"},
		},
		{
			name: "not started yet",
			snapshot: rules.EndSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     102 * hour,
				UTCReqTime: 99 * hour,
			},
			want: []string{"Booking must be ongoing", "Booking too fresh"},
		},
		{
			name: "already over",
			snapshot: rules.EndSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     102 * hour,
				UTCReqTime: 103 * hour,
			},
			want: []string{"Booking must be ongoing"},
		},
		{
			name: "started two minutes ago",
			snapshot: rules.EndSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     102 * hour,
				UTCReqTime: 100*hour + 2*minute,
			},
			want: []string{"Booking too fresh"},
		},
		{
			name: "started exactly five minutes ago",
			snapshot: rules.EndSnapshot{
				Active:     1,
				UTCStart:   100 * hour,
				UTCEnd:     102 * hour,
				UTCReqTime: 100*hour + 5*minute,
			},
			wantPass: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasons := checker.CheckEnd(tt.snapshot)

			if tt.wantPass {
				assert.Empty(t, reasons)
			} else {
				assert.Equal(t, tt.want, reasons)
			}
		})
	}
}

func TestChecker_CheckMove(t *testing.T) {
	checker := testChecker()

	tests := []struct {
		name     string
		snapshot rules.MoveSnapshot
		want     []string
		wantPass bool
	}{
		{
			name:     "active future booking",
			snapshot: rules.MoveSnapshot{Active: 1, UTCEnd: 102 * hour, UTCReqTime: 100 * hour},
			wantPass: true,
		},
		{
			name:     "active ongoing booking",
			snapshot: rules.MoveSnapshot{Active: 1, UTCEnd: 102 * hour, UTCReqTime: 101 * hour},
			wantPass: true,
		},
		{
			name:     "inactive",
			snapshot: rules.MoveSnapshot{Active: 0, UTCEnd: 102 * hour, UTCReqTime: 100 * hour},
			want:     []string{"Booking must be active"},
		},
		{
			name:     "ended",
			snapshot: rules.MoveSnapshot{Active: 1, UTCEnd: 102 * hour, UTCReqTime: 103 * hour},
			want:     []string{"Booking has ended"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasons := checker.CheckMove(tt.snapshot)

			if tt.wantPass {
				assert.Empty(t, reasons)
			} else {
				assert.Equal(t, tt.want, reasons)
			}
		})
	}
}

func TestChecker_CheckDispatch(t *testing.T) {
	checker := testChecker()

	snapshot := model.Snapshot{
		Booking:    model.Booking{Active: 1},
		UTCStart:   100 * hour,
		UTCEnd:     102 * hour,
		UTCCreated: 90 * hour,
		UTCReqTime: 95 * hour,
	}

	assert.Empty(t, checker.Check(rules.ActionCancel, snapshot))
	assert.Empty(t, checker.Check(rules.ActionMove, snapshot))
	assert.NotEmpty(t, checker.Check(rules.ActionEnd, snapshot))
	assert.Equal(t, []string{"unsupported action"}, checker.Check(rules.Action(0), snapshot))
}
