package response_models

type AccountLoginResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UnitID string `json:"unit_id"`
	Unit   string `json:"unit"`
}

type AccountResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	UnitID      string `json:"unit_id"`
}
