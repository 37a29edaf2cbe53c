package request_models

type CreateAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
