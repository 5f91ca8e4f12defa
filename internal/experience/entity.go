// AngelaMos | 2026
// entity.go

package experience

type Experience struct {
	ID           int64   `db:"id"`
	Period       string  `db:"period"`
	Position     string  `db:"position"`
	Company      string  `db:"company"`
	Description  *string `db:"description"`
	DisplayOrder *int    `db:"display_order"`
}
