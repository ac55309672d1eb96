// Package schedule derives per-day closed-time frames from the weekly open
// windows of all currently valid schedules. The engine is pure; the service
// feeds it sorted rows from the repository.
package schedule

import "clubhouse/internal/domains/schedule/model"

// CalendarWindow sizes the day's calendar. It starts from the configured
// defaults and widens to cover any open window falling outside them, so an
// early-morning or late-night window is never clipped.
func CalendarWindow(windows []model.OpenWindow, defaultStartMin, defaultEndMin int) (int, int) {
	start, end := defaultStartMin, defaultEndMin

	for _, w := range windows {
		if w.OpenMin < start {
			start = w.OpenMin
		}

		if w.CloseMin > end {
			end = w.CloseMin
		}
	}

	return start, end
}

// ClosedFrames merges open windows into the complementary closed intervals in
// one sweep. Windows must be sorted by court then open time. Every court in
// courtIDs is accounted for: a court with no open window that day gets a
// single frame spanning the whole calendar window.
func ClosedFrames(courtIDs []int64, windows []model.OpenWindow, calStartMin, calEndMin int) []model.ClosedFrame {
	frames := []model.ClosedFrame{}
	seen := make(map[int64]bool, len(courtIDs))

	var lastCourt int64

	lastClose := calStartMin

	for _, w := range windows {
		if lastCourt != 0 && w.CourtID != lastCourt {
			if lastClose < calEndMin {
				frames = append(frames, model.ClosedFrame{CourtID: lastCourt, StartMin: lastClose, EndMin: calEndMin})
			}

			lastClose = calStartMin
		}

		if w.OpenMin > lastClose {
			frames = append(frames, model.ClosedFrame{CourtID: w.CourtID, StartMin: lastClose, EndMin: w.OpenMin})
		}

		if w.CloseMin > lastClose {
			lastClose = w.CloseMin
		}

		lastCourt = w.CourtID
		seen[w.CourtID] = true
	}

	if lastCourt != 0 && lastClose < calEndMin {
		frames = append(frames, model.ClosedFrame{CourtID: lastCourt, StartMin: lastClose, EndMin: calEndMin})
	}

	for _, id := range courtIDs {
		if !seen[id] {
			frames = append(frames, model.ClosedFrame{CourtID: id, StartMin: calStartMin, EndMin: calEndMin})
		}
	}

	return frames
}
