package favorites

type updateInput struct {
	Body UpdateRequest
}

type UpdateRequest struct {
	Favorites []string `json:"favorites" doc:"Full favorite set, alpha-3 country codes"`
}

type updateOutput struct {
	Body UpdateResponse
}

type UpdateResponse struct {
	Favorites []string `json:"favorites"`
}
