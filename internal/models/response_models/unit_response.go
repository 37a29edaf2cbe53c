package response_models

type UnitResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Plan string `json:"plan"`
}
