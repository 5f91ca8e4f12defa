// AngelaMos | 2026
// entity.go

package projects

type Project struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Image       *string `db:"image"`
	Link        *string `db:"link"`
	Order       *int    `db:"order"`
	Archived    bool    `db:"archived"`
}
