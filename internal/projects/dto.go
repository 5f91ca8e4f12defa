// AngelaMos | 2026
// dto.go

package projects

type CreateProjectRequest struct {
	Title       string  `json:"title"       validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image       *string `json:"image,omitempty"       validate:"omitempty,max=500"`
	Link        *string `json:"link,omitempty"        validate:"omitempty,url,max=500"`
	SkillIDs    []int64 `json:"skill_ids,omitempty"`
}

// UpdateProjectRequest carries the full row; a nil SkillIDs leaves the
// existing links untouched, while a non-nil slice fully replaces them.
type UpdateProjectRequest struct {
	Title       string   `json:"title"       validate:"required,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image       *string  `json:"image,omitempty"       validate:"omitempty,max=500"`
	Link        *string  `json:"link,omitempty"        validate:"omitempty,url,max=500"`
	Archived    bool     `json:"archived"`
	SkillIDs    *[]int64 `json:"skill_ids,omitempty"`
}

type ReorderRequest struct {
	IDs []int64 `json:"ids" validate:"required"`
}

type ProjectResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Link        *string `json:"link,omitempty"`
	Order       *int    `json:"order"`
	Archived    bool    `json:"archived"`
	SkillIDs    []int64 `json:"skill_ids,omitempty"`
}

func ToProjectResponse(p *Project, skillIDs []int64) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Link:        p.Link,
		Order:       p.Order,
		Archived:    p.Archived,
		SkillIDs:    skillIDs,
	}
}

func ToProjectResponseList(items []Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		responses = append(responses, ToProjectResponse(&p, nil))
	}
	return responses
}
