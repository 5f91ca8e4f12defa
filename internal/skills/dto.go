// AngelaMos | 2026
// dto.go

package skills

type CreateSkillRequest struct {
	Label       string  `json:"label"       validate:"required,min=1,max=100"`
	ImgSrc      *string `json:"img_src,omitempty"     validate:"omitempty,max=500"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// UpdateSkillRequest carries the full row: toggling archived alone still
// requires sending every other field forward, so callers fetch-then-send.
type UpdateSkillRequest struct {
	Label       string  `json:"label"       validate:"required,min=1,max=100"`
	ImgSrc      *string `json:"img_src,omitempty"     validate:"omitempty,max=500"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Archived    bool    `json:"archived"`
}

type ReorderRequest struct {
	IDs []int64 `json:"ids" validate:"required"`
}

type SkillResponse struct {
	ID          int64   `json:"id"`
	Label       string  `json:"label"`
	ImgSrc      *string `json:"img_src,omitempty"`
	Description *string `json:"description,omitempty"`
	Order       *int    `json:"order"`
	Archived    bool    `json:"archived"`
}

func ToSkillResponse(s *Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		Label:       s.Label,
		ImgSrc:      s.ImgSrc,
		Description: s.Description,
		Order:       s.Order,
		Archived:    s.Archived,
	}
}

func ToSkillResponseList(items []Skill) []SkillResponse {
	responses := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		responses = append(responses, ToSkillResponse(&s))
	}
	return responses
}
