package response

import "time"

type HallResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	TotalSeats int    `json:"totalSeats"`
}

type SessionDetailResponse struct {
	ID        int64               `json:"id"`
	Movie     MovieDetailResponse `json:"movie"`
	Hall      HallResponse        `json:"hall"`
	StartTime time.Time           `json:"startTime"`
}
