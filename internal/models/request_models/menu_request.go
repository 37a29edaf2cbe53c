package request_models

// MenuSlotForm is the multipart form used to save a slot directly or to edit
// a draft slot. The optional photo travels in the "image" file field.
type MenuSlotForm struct {
	SideDish string `form:"side_dish"`
	Protein  string `form:"protein"`
	Dessert  string `form:"dessert"`
}
