package dto

import "clubhouse/internal/domains/court/model"

type CourtResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	State    int    `json:"state"`
	OpenMin  int    `json:"open_min"`
	CloseMin int    `json:"close_min"`
}

type GetCourtsResponse struct {
	Courts []CourtResponse `json:"courts"`
}

func (r *GetCourtsResponse) FromModels(models []model.Court) {
	r.Courts = make([]CourtResponse, len(models))
	for i, court := range models {
		r.Courts[i] = CourtResponse{
			ID:       court.ID,
			Name:     court.Name,
			State:    court.State,
			OpenMin:  court.Open,
			CloseMin: court.Close,
		}
	}
}
