// AngelaMos | 2026
// entity.go

package content

// Singleton rows, always id = 1.

type About struct {
	ID      int64  `db:"id"`
	Content string `db:"content"`
}

type CV struct {
	ID     int64  `db:"id"`
	LinkCV string `db:"link_cv"`
}

type Counter struct {
	ID     int64 `db:"id"`
	Number int   `db:"number"`
}
