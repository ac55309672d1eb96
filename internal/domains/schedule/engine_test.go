package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubhouse/internal/domains/schedule"
	"clubhouse/internal/domains/schedule/model"
)

func TestCalendarWindow(t *testing.T) {
	tests := []struct {
		name      string
		windows   []model.OpenWindow
		wantStart int
		wantEnd   int
	}{
		{
			name:      "no items falls back to defaults",
			windows:   nil,
			wantStart: 360,
			wantEnd:   1380,
		},
		{
			name: "items inside defaults keep defaults",
			windows: []model.OpenWindow{
				{CourtID: 1, OpenMin: 480, CloseMin: 1200},
			},
			wantStart: 360,
			wantEnd:   1380,
		},
		{
			name: "early open and late close widen the window",
			windows: []model.OpenWindow{
				{CourtID: 1, OpenMin: 300, CloseMin: 1200},
				{CourtID: 2, OpenMin: 480, CloseMin: 1410},
			},
			wantStart: 300,
			wantEnd:   1410,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := schedule.CalendarWindow(tt.windows, 360, 1380)

			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestClosedFrames(t *testing.T) {
	tests := []struct {
		name     string
		courtIDs []int64
		windows  []model.OpenWindow
		want     []model.ClosedFrame
	}{
		{
			name:     "no open windows blocks every court fully",
			courtIDs: []int64{1, 2, 3},
			windows:  nil,
			want: []model.ClosedFrame{
				{CourtID: 1, StartMin: 360, EndMin: 1380},
				{CourtID: 2, StartMin: 360, EndMin: 1380},
				{CourtID: 3, StartMin: 360, EndMin: 1380},
			},
		},
		{
			name:     "full coverage emits nothing",
			courtIDs: []int64{1},
			windows: []model.OpenWindow{
				{CourtID: 1, OpenMin: 360, CloseMin: 1380},
			},
			want: []model.ClosedFrame{},
		},
		{
			name:     "gap between two windows",
			courtIDs: []int64{1},
			windows: []model.OpenWindow{
				{CourtID: 1, OpenMin: 360, CloseMin: 720},
				{CourtID: 1, OpenMin: 780, CloseMin: 1380},
			},
			want: []model.ClosedFrame{
				{CourtID: 1, StartMin: 720, EndMin: 780},
			},
		},
		{
			name:     "leading and trailing closure",
			courtIDs: []int64{1},
			windows: []model.OpenWindow{
				{CourtID: 1, OpenMin: 480, CloseMin: 1200},
			},
			want: []model.ClosedFrame{
				{CourtID: 1, StartMin: 360, EndMin: 480},
				{CourtID: 1, StartMin: 1200, EndMin: 1380},
			},
		},
		{
			name:     "court change flushes the previous court",
			courtIDs: []int64{1, 2},
			windows: []model.OpenWindow{
				{CourtID: 1, OpenMin: 360, CloseMin: 720},
				{CourtID: 2, OpenMin: 480, CloseMin: 1380},
			},
			want: []model.ClosedFrame{
				{CourtID: 1, StartMin: 720, EndMin: 1380},
				{CourtID: 2, StartMin: 360, EndMin: 480},
			},
		},
		{
			name:     "unseen court gets a full-window frame",
			courtIDs: []int64{1, 2},
			windows: []model.OpenWindow{
				{CourtID: 1, OpenMin: 360, CloseMin: 1380},
			},
			want: []model.ClosedFrame{
				{CourtID: 2, StartMin: 360, EndMin: 1380},
			},
		},
		{
			name:     "overlapping windows on the same court",
			courtIDs: []int64{1},
			windows: []model.OpenWindow{
				{CourtID: 1, OpenMin: 360, CloseMin: 900},
				{CourtID: 1, OpenMin: 600, CloseMin: 1380},
			},
			want: []model.ClosedFrame{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.ClosedFrames(tt.courtIDs, tt.windows, 360, 1380)

			assert.Equal(t, tt.want, got)
		})
	}
}

// Every minute of the calendar window must be covered by exactly one of: an
// open window or a closed frame.
func TestClosedFrames_Complement(t *testing.T) {
	courtIDs := []int64{1, 2, 3}
	windows := []model.OpenWindow{
		{CourtID: 1, OpenMin: 360, CloseMin: 700},
		{CourtID: 1, OpenMin: 760, CloseMin: 1380},
		{CourtID: 2, OpenMin: 500, CloseMin: 1000},
	}

	frames := schedule.ClosedFrames(courtIDs, windows, 360, 1380)

	covered := func(court int64, minuteOfDay int) bool {
		for _, w := range windows {
			if w.CourtID == court && minuteOfDay >= w.OpenMin && minuteOfDay < w.CloseMin {
				return true
			}
		}

		for _, f := range frames {
			if f.CourtID == court && minuteOfDay >= f.StartMin && minuteOfDay < f.EndMin {
				return true
			}
		}

		return false
	}

	for _, court := range courtIDs {
		for m := 360; m < 1380; m++ {
			assert.Truef(t, covered(court, m), "court %d minute %d uncovered", court, m)
		}
	}
}
