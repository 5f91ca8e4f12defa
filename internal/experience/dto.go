// AngelaMos | 2026
// dto.go

package experience

type CreateExperienceRequest struct {
	Period      string  `json:"period"   validate:"required,min=1,max=100"`
	Position    string  `json:"position" validate:"required,min=1,max=200"`
	Company     string  `json:"company"  validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	SkillIDs    []int64 `json:"skill_ids,omitempty"`
}

// UpdateExperienceRequest carries the full row; a nil SkillIDs leaves the
// existing links untouched, while a non-nil slice fully replaces them.
type UpdateExperienceRequest struct {
	Period      string   `json:"period"   validate:"required,min=1,max=100"`
	Position    string   `json:"position" validate:"required,min=1,max=200"`
	Company     string   `json:"company"  validate:"required,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	SkillIDs    *[]int64 `json:"skill_ids,omitempty"`
}

type ReorderRequest struct {
	IDs []int64 `json:"ids" validate:"required"`
}

type ExperienceResponse struct {
	ID           int64   `json:"id"`
	Period       string  `json:"period"`
	Position     string  `json:"position"`
	Company      string  `json:"company"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int    `json:"display_order"`
	SkillIDs     []int64 `json:"skill_ids,omitempty"`
}

func ToExperienceResponse(e *Experience, skillIDs []int64) ExperienceResponse {
	return ExperienceResponse{
		ID:           e.ID,
		Period:       e.Period,
		Position:     e.Position,
		Company:      e.Company,
		Description:  e.Description,
		DisplayOrder: e.DisplayOrder,
		SkillIDs:     skillIDs,
	}
}

func ToExperienceResponseList(items []Experience) []ExperienceResponse {
	responses := make([]ExperienceResponse, 0, len(items))
	for _, e := range items {
		responses = append(responses, ToExperienceResponse(&e, nil))
	}
	return responses
}
