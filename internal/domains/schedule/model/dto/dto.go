package dto

import (
	"fmt"

	"clubhouse/internal/domains/schedule/model"
)

type ClosedFrameResponse struct {
	CourtID  int64  `json:"court_id"`
	StartMin int    `json:"start_min"`
	EndMin   int    `json:"end_min"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

type ClosedFramesResponse struct {
	Date   string                `json:"date"`
	Frames []ClosedFrameResponse `json:"frames"`
}

func (r *ClosedFramesResponse) FromModels(date string, frames []model.ClosedFrame) {
	r.Date = date

	r.Frames = make([]ClosedFrameResponse, len(frames))
	for i, frame := range frames {
		r.Frames[i] = ClosedFrameResponse{
			CourtID:  frame.CourtID,
			StartMin: frame.StartMin,
			EndMin:   frame.EndMin,
			Start:    clock(frame.StartMin),
			End:      clock(frame.EndMin),
		}
	}
}

type ScheduleItemResponse struct {
	CourtID  int64  `json:"court_id"`
	Weekday  int    `json:"weekday"`
	Open     string `json:"open"`
	Close    string `json:"close"`
	OpenMin  int    `json:"open_min"`
	CloseMin int    `json:"close_min"`
	Message  string `json:"message,omitempty"`
}

type ScheduleResponse struct {
	ID    int64                  `json:"id"`
	Name  string                 `json:"name"`
	From  string                 `json:"from"`
	To    string                 `json:"to"`
	Items []ScheduleItemResponse `json:"items"`
}

type GetSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

func (r *GetSchedulesResponse) FromModels(models []model.Schedule) {
	r.Schedules = make([]ScheduleResponse, len(models))

	for i, schedule := range models {
		items := make([]ScheduleItemResponse, len(schedule.Items))
		for j, item := range schedule.Items {
			items[j] = ScheduleItemResponse{
				CourtID:  item.CourtID,
				Weekday:  item.Weekday,
				Open:     clock(item.OpenMin),
				Close:    clock(item.CloseMin),
				OpenMin:  item.OpenMin,
				CloseMin: item.CloseMin,
				Message:  item.Message,
			}
		}

		r.Schedules[i] = ScheduleResponse{
			ID:    schedule.ID,
			Name:  schedule.Name,
			From:  schedule.From,
			To:    schedule.To,
			Items: items,
		}
	}
}

func clock(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}
