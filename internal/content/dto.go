// AngelaMos | 2026
// dto.go

package content

type UpdateAboutRequest struct {
	Content string `json:"content" validate:"required,max=20000"`
}

type UpdateCVRequest struct {
	LinkCV string `json:"link_cv" validate:"required,url,max=500"`
}

type UpdateCounterRequest struct {
	Number int `json:"number" validate:"gte=0"`
}

type AboutResponse struct {
	Content string `json:"content"`
}

type CVResponse struct {
	LinkCV string `json:"link_cv"`
}

type CountersResponse struct {
	Projects   int `json:"projects"`
	Experience int `json:"experience"`
}
