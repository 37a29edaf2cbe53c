package response_models

import "time"

type AnnouncementResponse struct {
	ID        string    `json:"id"`
	UnitID    string    `json:"unit_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
