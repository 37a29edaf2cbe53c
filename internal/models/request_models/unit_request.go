package request_models

type CreateUnitRequest struct {
	Name string `json:"name" binding:"required"`
	Plan string `json:"plan"`
}

type ChangePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}
