// AngelaMos | 2026
// entity.go

package skills

type Skill struct {
	ID          int64   `db:"id"`
	Label       string  `db:"label"`
	ImgSrc      *string `db:"imgSrc"`
	Description *string `db:"description"`
	Order       *int    `db:"order"`
	Archived    bool    `db:"archived"`
}
