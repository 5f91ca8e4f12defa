// AngelaMos | 2026
// dto.go

package contact

type ContactRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=200"`
	Email   string `json:"email"   validate:"required,email,max=320"`
	Message string `json:"message" validate:"required,min=1,max=10000"`
}
